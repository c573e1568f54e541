package model

import "time"

// Metadata contains document-level information written to the PDF Info
// dictionary
type Metadata struct {
	Title        string
	Author       string
	Subject      string
	Keywords     []string
	Creator      string
	Producer     string
	CreationDate time.Time
}
