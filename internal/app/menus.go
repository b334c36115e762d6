package app

import (
	"fyne.io/fyne/v2"
)

func (a *Application) setupMenus() {
	quit := fyne.NewMenuItem("Quit", func() {
		a.fyneApp.Quit()
	})
	quit.IsQuit = true

	scheduleMenu := fyne.NewMenu("Schedule",
		fyne.NewMenuItem("Show All Matches", func() {
			a.controller.ShowAll()
		}),
		fyne.NewMenuItem("Clear", func() {
			a.controller.Clear()
		}),
		fyne.NewMenuItemSeparator(),
		quit,
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.view.ShowAboutDialog(AppName, AppVersion)
		}),
	)

	mainMenu := fyne.NewMainMenu(scheduleMenu, helpMenu)
	a.window.SetMainMenu(mainMenu)
}
