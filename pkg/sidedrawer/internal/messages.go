package internal

import (
	"embed"
	"path"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message IDs for diagnostic trace lines. The text lives in locales/.
const (
	MsgEdgeGestureBegan      = "EdgeGestureBegan"
	MsgEdgeGestureChanged    = "EdgeGestureChanged"
	MsgEdgeGestureEnded      = "EdgeGestureEnded"
	MsgEdgeGestureFailed     = "EdgeGestureFailed"
	MsgCloseGestureBegan     = "CloseGestureBegan"
	MsgCloseGestureChanged   = "CloseGestureChanged"
	MsgCloseGestureEnded     = "CloseGestureEnded"
	MsgCloseDecisionPosition = "CloseDecisionPosition"
	MsgCloseDecisionVelocity = "CloseDecisionVelocity"
	MsgCloseDecisionFinal    = "CloseDecisionFinal"
	MsgHapticFired           = "HapticFired"
	MsgDrawerOpening         = "DrawerOpening"
	MsgDrawerClosing         = "DrawerClosing"
	MsgTapOutside            = "TapOutside"
	MsgExternalOpen          = "ExternalOpen"
	MsgExternalClose         = "ExternalClose"
	MsgNoInstance            = "NoInstance"
	MsgAlreadyOpen           = "AlreadyOpen"
	MsgAlreadyClosed         = "AlreadyClosed"
)

//go:embed locales/*.toml
var localeFS embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
)

func messageBundle() *i18n.Bundle {
	bundleOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		entries, err := localeFS.ReadDir("locales")
		if err != nil {
			GetInternalLogger().Error("Failed to read embedded locales", "error", err)
			return
		}

		for _, entry := range entries {
			name := path.Join("locales", entry.Name())
			data, err := localeFS.ReadFile(name)
			if err != nil {
				GetInternalLogger().Error("Failed to read locale file", "file", name, "error", err)
				continue
			}
			if _, err := bundle.ParseMessageFileBytes(data, name); err != nil {
				GetInternalLogger().Error("Failed to parse locale file", "file", name, "error", err)
			}
		}
	})
	return bundle
}

// Messages renders localized diagnostic text.
type Messages struct {
	tag       language.Tag
	localizer *i18n.Localizer
}

// NewMessages returns a Messages for the given BCP 47 language. Unknown or
// malformed languages fall back to English.
func NewMessages(lang string) *Messages {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}

	return &Messages{
		tag:       tag,
		localizer: i18n.NewLocalizer(messageBundle(), tag.String(), language.English.String()),
	}
}

// Language returns the language the messages were requested in.
func (m *Messages) Language() language.Tag {
	return m.tag
}

// Text localizes the message with the given ID. The ID itself is returned when
// no translation exists in any language.
func (m *Messages) Text(id string, data map[string]any) string {
	text, err := m.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil && text == "" {
		return id
	}
	return text
}
