// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// atmost-notes user interface.
//
// All Msg* constants are human-readable notification texts shown to the user
// after an action. Keeping them in one place ensures consistent wording
// throughout the interface.
package app

const (
	// MsgUserNotFound is shown when a login names an unknown account.
	MsgUserNotFound = "User not found. Please register."

	// MsgIncorrectPassword is shown when a login supplies the wrong password.
	MsgIncorrectPassword = "Incorrect password."

	// MsgUsernameAlreadyExists is shown when registration or a rename picks a
	// username that is already taken.
	MsgUsernameAlreadyExists = "Username already exists."

	// MsgRegistrationSuccessful is shown after an account was created.
	MsgRegistrationSuccessful = "Your account has been created."

	// MsgInvalidDataProvided is shown when a required field is empty.
	MsgInvalidDataProvided = "Please fill in all required fields."

	MsgNotLoggedIn = "Please log in first."

	MsgNoteSaved    = "Note saved successfully."
	MsgNoteNotFound = "Note not found."

	MsgUsernameChanged = "Username changed successfully."

	// MsgPasswordChanged is shown after a successful password change.
	MsgPasswordChanged = "Password changed successfully."

	// MsgPasswordsDoNotMatch is shown when the new password and its
	// confirmation differ.
	MsgPasswordsDoNotMatch = "Passwords do not match."

	// MsgIncorrectCurrentPassword is shown when the old password supplied to
	// a password change is wrong.
	MsgIncorrectCurrentPassword = "Incorrect current password."

	MsgProfilePictureChanged = "Profile picture updated."

	// MsgUnsupportedImage is shown when a profile picture is not a PNG, JPG
	// or BMP file.
	MsgUnsupportedImage = "Please choose a PNG, JPG or BMP image."

	// MsgFileUnreadable is shown when a chosen file or directory cannot be
	// opened.
	MsgFileUnreadable = "The selected file or directory cannot be read."

	MsgExportComplete = "Notes exported successfully!"
	MsgImportComplete = "Notes imported successfully!"

	// MsgNoNoteToSummarize and MsgNoNoteForSuggestions are shown when an
	// assistant action needs a loaded note.
	MsgNoNoteToSummarize    = "Please select a note to summarize."
	MsgNoNoteForSuggestions = "Please select a note to get suggestions."

	MsgAssistantDisabled = "The AI assistant is turned off."
	MsgAssistantBusy     = "The AI assistant is still working on the previous request."

	MsgCopied = "Text copied to clipboard."

	MsgThemeChanged = "Theme changed."
	MsgInvalidColor = "Colours must be written as #RRGGBB."

	MsgAssistantOn  = "AI assistant turned on."
	MsgAssistantOff = "AI assistant turned off."

	// MsgInternalError is shown for unexpected storage or file failures.
	MsgInternalError = "Something went wrong. See the log file for details."
)
