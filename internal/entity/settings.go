package entity

import (
	"strconv"
	"strings"

	"bid-tracking-api/internal/common"
)

// Settings is the run-scoped configuration read from the settings sheet once
// per pass and handed explicitly to every pipeline component.
type Settings struct {
	CalendarId      string
	ParentFolderRef string
	CreateFolders   bool
	CreateDocs      bool
	RfpMode         string
	NotifyOnNew     bool
	NotifyOnUpdate  bool
	Keywords        []string
	AutoImport      bool
	IdPrefix        string
	Timezone        string
}

func DefaultSettings() Settings {
	return Settings{
		RfpMode:        common.RfpModeCopy,
		NotifyOnNew:    true,
		NotifyOnUpdate: false,
		IdPrefix:       "BID",
		Timezone:       "America/New_York",
	}
}

// SettingsFromPairs overlays recognized keys from the settings sheet onto the
// defaults. Unknown keys are ignored; malformed booleans fall back to false.
func SettingsFromPairs(pairs map[string]string) Settings {
	s := DefaultSettings()

	for key, value := range pairs {
		value = strings.TrimSpace(value)
		switch key {
		case "calendar_id":
			s.CalendarId = value
		case "parent_folder_ref":
			s.ParentFolderRef = value
		case "create_folders":
			s.CreateFolders = parseBool(value)
		case "create_docs":
			s.CreateDocs = parseBool(value)
		case "rfp_mode":
			if value == common.RfpModeMove {
				s.RfpMode = common.RfpModeMove
			}
		case "notify_on_new":
			s.NotifyOnNew = parseBool(value)
		case "notify_on_update":
			s.NotifyOnUpdate = parseBool(value)
		case "keywords":
			s.Keywords = splitKeywords(value)
		case "auto_import":
			s.AutoImport = parseBool(value)
		case "id_prefix":
			if value != "" {
				s.IdPrefix = value
			}
		case "timezone":
			if value != "" {
				s.Timezone = value
			}
		}
	}

	return s
}

func parseBool(raw string) bool {
	b, err := strconv.ParseBool(strings.ToLower(raw))
	if err != nil {
		return false
	}

	return b
}

func splitKeywords(raw string) []string {
	var keywords []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			keywords = append(keywords, part)
		}
	}

	return keywords
}
