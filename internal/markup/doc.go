// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package markup converts note bodies between the stored HTML form and the
// lightweight source form edited in the terminal.
//
// Source form, one block per line:
//
//	**bold**  _italic_  __underline__
//	- bullet item
//	1. numbered item
//
// Any other non-empty line is a paragraph. HTML written by other editors is
// read leniently: unknown tags are dropped and their text kept, and inline
// span styles (font-weight, font-style, text-decoration) map to the
// corresponding markers.
package markup
