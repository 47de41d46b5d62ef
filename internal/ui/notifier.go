package ui

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// Notifier surfaces user-facing messages
type Notifier interface {
	Error(message string)
	Warning(message string)
	Info(message string)
}

// dialogNotifier shows modal dialogs on the main window
type dialogNotifier struct {
	window       fyne.Window
	localization *Localization
}

func newDialogNotifier(window fyne.Window, localization *Localization) *dialogNotifier {
	return &dialogNotifier{window: window, localization: localization}
}

func (n *dialogNotifier) Error(message string) {
	dialog.ShowError(errors.New(message), n.window)
}

func (n *dialogNotifier) Warning(message string) {
	dialog.ShowInformation(n.localization.GetText(KeyWarning), message, n.window)
}

func (n *dialogNotifier) Info(message string) {
	dialog.ShowInformation(n.localization.GetText(KeyAppTitle), message, n.window)
}
