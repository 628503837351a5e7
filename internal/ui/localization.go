package ui

import "fmt"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle   = "app_title"
	KeyAppTagline = "app_tagline"
	KeyTabSaver   = "tab_saver"
	KeyTabHistory = "tab_history"
	KeySettings   = "settings"
	KeyFile       = "file"
	KeyLanguage   = "language"
	KeySave       = "save"
	KeyCancel     = "cancel"

	KeyEnterURL        = "enter_url"
	KeyURLLabel        = "url_label"
	KeyFetch           = "fetch"
	KeyFetching        = "fetching"
	KeyURLRequired     = "url_required"
	KeyPleaseEnterURL  = "please_enter_url"
	KeyInvalidURL      = "invalid_url"
	KeyInvalidURLBody  = "invalid_url_body"
	KeyVideoFound      = "video_found"
	KeyVideoFoundBody  = "video_found_body"
	KeyFetchFailed     = "fetch_failed"
	KeyFetchFailedBody = "fetch_failed_body"
	KeyURLDetected     = "url_detected"
	KeyURLDetectedBody = "url_detected_body"

	KeySelectQuality       = "select_quality"
	KeyDownload            = "download"
	KeyDownloading         = "downloading"
	KeyStop                = "stop"
	KeyDownloadInProgress  = "download_in_progress"
	KeyInvalidQuality      = "invalid_quality"
	KeyDownloadCancelled   = "download_cancelled"
	KeyDownloadFailed      = "download_failed"
	KeyDownloadFailedBody  = "download_failed_body"
	KeyDownloadCompleted   = "download_completed"
	KeySavedToDevice       = "saved_to_device"
	KeyLegalNoticeTitle    = "legal_notice_title"
	KeyLegalNoticeBody     = "legal_notice_body"
	KeyHistoryTitle        = "history_title"
	KeyHistoryCount        = "history_count"
	KeyClearAll            = "clear_all"
	KeyClearAllConfirm     = "clear_all_confirm"
	KeyHistoryCleared      = "history_cleared"
	KeyHistoryClearedBody  = "history_cleared_body"
	KeyNoDownloads         = "no_downloads"
	KeyNoDownloadsBody     = "no_downloads_body"
	KeyPlay                = "play"
	KeyShare               = "share"
	KeyDelete              = "delete"
	KeyOpeningVideo        = "opening_video"
	KeyPlayingVideo        = "playing_video"
	KeyShareVideo          = "share_video"
	KeyShareVideoBody      = "share_video_body"
	KeyDeleted             = "deleted"
	KeyDeletedBody         = "deleted_body"
	KeyHistoryError        = "history_error"
	KeyHistoryErrorTitle   = "history_error_title"
	KeyStorageUnavailable  = "storage_unavailable"
	KeyShowSplash          = "show_splash"
	KeyClipboardDetect     = "clipboard_detect"
	KeyFetchLatency        = "fetch_latency"
	KeyProgressTick        = "progress_tick"
	KeyHistoryLimit        = "history_limit"
	KeySettingsSaved       = "settings_saved"
	KeyTimingAfterRestart  = "timing_after_restart"
	KeyInterfaceSettings   = "interface_settings"
	KeySimulationSettings  = "simulation_settings"
	KeyLanguageSystem      = "language_system"
	KeyInvalidNumber       = "invalid_number"
	KeyDurationPlaceholder = "duration_placeholder"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Format returns the localized text for key formatted with args
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:   "FB Video Saver",
		KeyAppTagline: "Professional Video Downloader",
		KeyTabSaver:   "Downloader",
		KeyTabHistory: "History",
		KeySettings:   "Settings",
		KeyFile:       "File",
		KeyLanguage:   "Language",
		KeySave:       "Save",
		KeyCancel:     "Cancel",

		KeyEnterURL:        "https://www.facebook.com/.../videos/...",
		KeyURLLabel:        "Facebook Video URL",
		KeyFetch:           "Get Video",
		KeyFetching:        "Fetching video info...",
		KeyURLRequired:     "URL Required",
		KeyPleaseEnterURL:  "Please enter a Facebook video URL.",
		KeyInvalidURL:      "Invalid URL",
		KeyInvalidURLBody:  "Please enter a valid Facebook video URL.",
		KeyVideoFound:      "Video Found!",
		KeyVideoFoundBody:  "Video metadata loaded successfully.",
		KeyFetchFailed:     "Error",
		KeyFetchFailedBody: "Failed to fetch video metadata. Please try again.",
		KeyURLDetected:     "URL Detected",
		KeyURLDetectedBody: "Facebook URL found in clipboard!",

		KeySelectQuality:      "Select Quality",
		KeyDownload:           "Download Video",
		KeyDownloading:        "Downloading... %s",
		KeyStop:               "Cancel",
		KeyDownloadInProgress: "Another download is already running.",
		KeyInvalidQuality:     "Please choose one of the offered qualities.",
		KeyDownloadCancelled:  "Download cancelled.",
		KeyDownloadFailed:     "Download Failed",
		KeyDownloadFailedBody: "There was an error downloading the video.",
		KeyDownloadCompleted:  "Download Complete! 🎉",
		KeySavedToDevice:      "%s (%s) has been saved to your device.",
		KeyLegalNoticeTitle:   "Legal Notice",
		KeyLegalNoticeBody: "This app only downloads public videos. Downloading content is your responsibility. " +
			"We do not host or store any Facebook content. Please respect copyright laws and Facebook's terms of service.",
		KeyHistoryTitle:       "Download History",
		KeyHistoryCount:       "%d",
		KeyClearAll:           "Clear All",
		KeyClearAllConfirm:    "Remove all videos from download history?",
		KeyHistoryCleared:     "History Cleared",
		KeyHistoryClearedBody: "All download history has been removed.",
		KeyNoDownloads:        "No Downloads Yet",
		KeyNoDownloadsBody:    "Downloaded videos will appear here for easy access.",
		KeyPlay:               "Play",
		KeyShare:              "Share",
		KeyDelete:             "Delete",
		KeyOpeningVideo:       "Opening Video",
		KeyPlayingVideo:       "Playing %s",
		KeyShareVideo:         "Share Video",
		KeyShareVideoBody:     "Video sharing functionality would open here.",
		KeyDeleted:            "Deleted",
		KeyDeletedBody:        "Video removed from history.",
		KeyHistoryError:       "Could not update download history.",
		KeyHistoryErrorTitle:  "History unavailable",
		KeyStorageUnavailable: "Download history storage is unavailable.",

		KeyShowSplash:          "Show splash screen",
		KeyClipboardDetect:     "Detect video URL in clipboard",
		KeyFetchLatency:        "Fetch delay",
		KeyProgressTick:        "Progress interval",
		KeyHistoryLimit:        "History size",
		KeySettingsSaved:       "Settings saved successfully!",
		KeyTimingAfterRestart:  "Timing and history size apply after restart.",
		KeyInterfaceSettings:   "Interface Settings",
		KeySimulationSettings:  "Simulation Settings",
		KeyLanguageSystem:      "System Default",
		KeyInvalidNumber:       "Enter a whole number",
		KeyDurationPlaceholder: "e.g. 2s, 200ms",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:   "FB Video Saver",
		KeyAppTagline: "Профессиональный загрузчик видео",
		KeyTabSaver:   "Загрузка",
		KeyTabHistory: "История",
		KeySettings:   "Настройки",
		KeyFile:       "Файл",
		KeyLanguage:   "Язык",
		KeySave:       "Сохранить",
		KeyCancel:     "Отмена",

		KeyEnterURL:        "https://www.facebook.com/.../videos/...",
		KeyURLLabel:        "Ссылка на видео Facebook",
		KeyFetch:           "Получить видео",
		KeyFetching:        "Загрузка сведений о видео...",
		KeyURLRequired:     "Нужна ссылка",
		KeyPleaseEnterURL:  "Пожалуйста, введите ссылку на видео Facebook.",
		KeyInvalidURL:      "Неверный URL",
		KeyInvalidURLBody:  "Введите корректную ссылку на видео Facebook.",
		KeyVideoFound:      "Видео найдено!",
		KeyVideoFoundBody:  "Сведения о видео загружены.",
		KeyFetchFailed:     "Ошибка",
		KeyFetchFailedBody: "Не удалось получить сведения о видео. Попробуйте ещё раз.",
		KeyURLDetected:     "Найдена ссылка",
		KeyURLDetectedBody: "В буфере обмена найдена ссылка Facebook!",

		KeySelectQuality:      "Выберите качество",
		KeyDownload:           "Скачать видео",
		KeyDownloading:        "Загрузка... %s",
		KeyStop:               "Отмена",
		KeyDownloadInProgress: "Другая загрузка уже выполняется.",
		KeyInvalidQuality:     "Выберите одно из предложенных качеств.",
		KeyDownloadCancelled:  "Загрузка отменена.",
		KeyDownloadFailed:     "Ошибка загрузки",
		KeyDownloadFailedBody: "При загрузке видео произошла ошибка.",
		KeyDownloadCompleted:  "Загрузка завершена! 🎉",
		KeySavedToDevice:      "%s (%s) сохранено на устройство.",
		KeyLegalNoticeTitle:   "Правовое уведомление",
		KeyLegalNoticeBody: "Приложение скачивает только общедоступные видео. Вы несёте ответственность за загружаемый контент. " +
			"Мы не размещаем и не храним контент Facebook. Соблюдайте авторские права и условия использования Facebook.",
		KeyHistoryTitle:       "История загрузок",
		KeyHistoryCount:       "%d",
		KeyClearAll:           "Очистить всё",
		KeyClearAllConfirm:    "Удалить все видео из истории загрузок?",
		KeyHistoryCleared:     "История очищена",
		KeyHistoryClearedBody: "Вся история загрузок удалена.",
		KeyNoDownloads:        "Загрузок пока нет",
		KeyNoDownloadsBody:    "Скачанные видео появятся здесь.",
		KeyPlay:               "Смотреть",
		KeyShare:              "Поделиться",
		KeyDelete:             "Удалить",
		KeyOpeningVideo:       "Открытие видео",
		KeyPlayingVideo:       "Воспроизведение: %s",
		KeyShareVideo:         "Поделиться видео",
		KeyShareVideoBody:     "Здесь откроется меню отправки видео.",
		KeyDeleted:            "Удалено",
		KeyDeletedBody:        "Видео удалено из истории.",
		KeyHistoryError:       "Не удалось обновить историю загрузок.",
		KeyHistoryErrorTitle:  "История недоступна",
		KeyStorageUnavailable: "Хранилище истории недоступно.",

		KeyShowSplash:          "Показывать заставку",
		KeyClipboardDetect:     "Искать ссылку в буфере обмена",
		KeyFetchLatency:        "Задержка получения",
		KeyProgressTick:        "Интервал прогресса",
		KeyHistoryLimit:        "Размер истории",
		KeySettingsSaved:       "Настройки успешно сохранены!",
		KeyTimingAfterRestart:  "Тайминги и размер истории применятся после перезапуска.",
		KeyInterfaceSettings:   "Интерфейс",
		KeySimulationSettings:  "Симуляция",
		KeyLanguageSystem:      "Системный",
		KeyInvalidNumber:       "Введите целое число",
		KeyDurationPlaceholder: "напр. 2s, 200ms",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:   "FB Video Saver",
		KeyAppTagline: "Baixador de Vídeos Profissional",
		KeyTabSaver:   "Baixar",
		KeyTabHistory: "Histórico",
		KeySettings:   "Configurações",
		KeyFile:       "Arquivo",
		KeyLanguage:   "Idioma",
		KeySave:       "Salvar",
		KeyCancel:     "Cancelar",

		KeyEnterURL:        "https://www.facebook.com/.../videos/...",
		KeyURLLabel:        "URL do vídeo do Facebook",
		KeyFetch:           "Obter Vídeo",
		KeyFetching:        "Buscando informações do vídeo...",
		KeyURLRequired:     "URL Necessária",
		KeyPleaseEnterURL:  "Por favor, digite uma URL de vídeo do Facebook.",
		KeyInvalidURL:      "URL inválida",
		KeyInvalidURLBody:  "Digite uma URL de vídeo do Facebook válida.",
		KeyVideoFound:      "Vídeo Encontrado!",
		KeyVideoFoundBody:  "Informações do vídeo carregadas.",
		KeyFetchFailed:     "Erro",
		KeyFetchFailedBody: "Falha ao buscar informações do vídeo. Tente novamente.",
		KeyURLDetected:     "URL Detectada",
		KeyURLDetectedBody: "URL do Facebook encontrada na área de transferência!",

		KeySelectQuality:      "Selecione a Qualidade",
		KeyDownload:           "Baixar Vídeo",
		KeyDownloading:        "Baixando... %s",
		KeyStop:               "Cancelar",
		KeyDownloadInProgress: "Outro download já está em andamento.",
		KeyInvalidQuality:     "Escolha uma das qualidades oferecidas.",
		KeyDownloadCancelled:  "Download cancelado.",
		KeyDownloadFailed:     "Falha no Download",
		KeyDownloadFailedBody: "Ocorreu um erro ao baixar o vídeo.",
		KeyDownloadCompleted:  "Download Concluído! 🎉",
		KeySavedToDevice:      "%s (%s) foi salvo no seu dispositivo.",
		KeyLegalNoticeTitle:   "Aviso Legal",
		KeyLegalNoticeBody: "Este app baixa apenas vídeos públicos. O download de conteúdo é de sua responsabilidade. " +
			"Não hospedamos nem armazenamos conteúdo do Facebook. Respeite os direitos autorais e os termos de serviço do Facebook.",
		KeyHistoryTitle:       "Histórico de Downloads",
		KeyHistoryCount:       "%d",
		KeyClearAll:           "Limpar Tudo",
		KeyClearAllConfirm:    "Remover todos os vídeos do histórico?",
		KeyHistoryCleared:     "Histórico Limpo",
		KeyHistoryClearedBody: "Todo o histórico de downloads foi removido.",
		KeyNoDownloads:        "Nenhum Download Ainda",
		KeyNoDownloadsBody:    "Os vídeos baixados aparecerão aqui.",
		KeyPlay:               "Reproduzir",
		KeyShare:              "Compartilhar",
		KeyDelete:             "Excluir",
		KeyOpeningVideo:       "Abrindo Vídeo",
		KeyPlayingVideo:       "Reproduzindo %s",
		KeyShareVideo:         "Compartilhar Vídeo",
		KeyShareVideoBody:     "O compartilhamento de vídeo abriria aqui.",
		KeyDeleted:            "Excluído",
		KeyDeletedBody:        "Vídeo removido do histórico.",
		KeyHistoryError:       "Não foi possível atualizar o histórico.",
		KeyHistoryErrorTitle:  "Histórico indisponível",
		KeyStorageUnavailable: "O armazenamento do histórico está indisponível.",

		KeyShowSplash:          "Mostrar tela de abertura",
		KeyClipboardDetect:     "Detectar URL na área de transferência",
		KeyFetchLatency:        "Atraso da busca",
		KeyProgressTick:        "Intervalo do progresso",
		KeyHistoryLimit:        "Tamanho do histórico",
		KeySettingsSaved:       "Configurações salvas com sucesso!",
		KeyTimingAfterRestart:  "Tempos e tamanho do histórico valem após reiniciar.",
		KeyInterfaceSettings:   "Interface",
		KeySimulationSettings:  "Simulação",
		KeyLanguageSystem:      "Padrão do Sistema",
		KeyInvalidNumber:       "Digite um número inteiro",
		KeyDurationPlaceholder: "ex. 2s, 200ms",
	}
}
