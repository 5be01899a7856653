package models

// StoreSetting is one key/value pair from the store_settings table. Values
// are stored as text; callers parse them as needed.
type StoreSetting struct {
	Key       string `json:"key"`
	Value     string `json:"value"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// UpsertSettingRequest represents the request body for creating or updating
// a setting
// Example: {"key": "report_archive_folder", "value": "1AbCdEfGh"}
type UpsertSettingRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
