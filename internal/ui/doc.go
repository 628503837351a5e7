package ui

// Package ui contains the Fyne user interface: splash screen, the downloader
// form, the history list, toasts and settings. Views talk to the core through
// the fetch, download and history packages and marshal every widget update
// onto the Fyne thread. All UI strings are localized via Localization.
