package view

// FormFooter lists the form actions.
func FormFooter(styles ModalStyles) string {
	return ButtonRow(styles, false,
		Button{Key: "Enter", Label: "Save"},
		Button{Key: "Esc", Label: "Cancel"},
	)
}

// DetailFooter lists the actions available on a selected appointment.
// Four buttons only fit the modal width when compact.
func DetailFooter(styles ModalStyles) string {
	return ButtonRow(styles, true,
		Button{Key: "e", Label: "Edit"},
		Button{Key: "d", Label: "Delete"},
		Button{Key: "y", Label: "Copy"},
		Button{Key: "Esc", Label: "Close"},
	)
}

func ConfirmDeleteFooter(styles ModalStyles) string {
	return ButtonRow(styles, false,
		Button{Key: "y/Enter", Label: "Delete", Danger: true},
		Button{Key: "n/Esc", Label: "Cancel"},
	)
}
