// Package constants renders and writes the app's shared constants module:
// payment methods, default card presets, upload states and the brand colors.
package constants

import "github.com/receiptkeeper/assetkit/internal/brand"

// Pair is one key/value entry of an exported object literal.
type Pair struct {
	Key   string
	Value string
}

// Card is a default payment card preset.
type Card struct {
	ID    string
	Name  string
	Color string
}

// Group order matches the emitted module.
var (
	PaymentMethods = []Pair{
		{"CASH", "cash"},
		{"CARD", "card"},
	}

	DefaultCards = []Card{
		{ID: "card1", Name: "Business Card", Color: brand.Primary},
		{ID: "card2", Name: "Personal Card", Color: "#1976D2"},
		{ID: "card3", Name: "Credit Card", Color: "#F57C00"},
	}

	UploadStatus = []Pair{
		{"PENDING", "pending"},
		{"UPLOADING", "uploading"},
		{"SUCCESS", "success"},
		{"FAILED", "failed"},
	}

	AppColors = []Pair{
		{"primary", brand.Primary},
		{"secondary", brand.Accent},
		{"success", "#43A047"},
		{"error", "#D32F2F"},
		{"warning", "#F57C00"},
		{"background", "#F5F5F5"},
		{"surface", brand.Secondary},
		{"text", "#212121"},
		{"textSecondary", "#757575"},
		{"border", brand.PaperStroke},
		{"accent", "#81C784"},
	}
)
