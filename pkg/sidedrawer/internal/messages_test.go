package internal

import (
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func TestMessagesEnglish(t *testing.T) {
	m := NewMessages("en")

	got := m.Text(MsgEdgeGestureEnded, map[string]any{"Offset": 120, "Velocity": 40, "Open": true})
	want := "edge gesture ended, offset 120, velocity 40, open: true"
	if got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestMessagesChinese(t *testing.T) {
	m := NewMessages("zh-Hans")

	got := m.Text(MsgCloseDecisionFinal, map[string]any{"Close": true})
	if got != "最终决定: 关闭菜单" {
		t.Errorf("Text() = %q", got)
	}
}

func TestMessagesFallback(t *testing.T) {
	m := NewMessages("not a language!")
	if m.Language() != language.English {
		t.Errorf("Language() = %v, want en", m.Language())
	}

	got := m.Text(MsgDrawerOpening, nil)
	if got != "opening drawer" {
		t.Errorf("Text() = %q", got)
	}

	// A language without a message file uses the English text.
	fr := NewMessages("fr")
	if got := fr.Text(MsgDrawerClosing, nil); got != "closing drawer" {
		t.Errorf("fr Text() = %q", got)
	}
}

func TestMessagesUnknownID(t *testing.T) {
	m := NewMessages("en")
	if got := m.Text("NoSuchMessage", nil); got != "NoSuchMessage" {
		t.Errorf("Text() = %q, want the message id", got)
	}
}

func TestEveryMessageTranslated(t *testing.T) {
	ids := []string{
		MsgEdgeGestureBegan, MsgEdgeGestureChanged, MsgEdgeGestureEnded, MsgEdgeGestureFailed,
		MsgCloseGestureBegan, MsgCloseGestureChanged, MsgCloseGestureEnded,
		MsgCloseDecisionPosition, MsgCloseDecisionVelocity, MsgCloseDecisionFinal,
		MsgHapticFired, MsgDrawerOpening, MsgDrawerClosing, MsgTapOutside,
		MsgExternalOpen, MsgExternalClose, MsgNoInstance, MsgAlreadyOpen, MsgAlreadyClosed,
	}

	data := map[string]any{
		"X": 1, "Offset": 1, "PanelX": 1, "Velocity": 1, "Open": false,
		"Width": 1, "Close": false,
	}

	for _, lang := range []string{"en", "zh-Hans"} {
		m := NewMessages(lang)
		for _, id := range ids {
			got := m.Text(id, data)
			if got == id || strings.Contains(got, "<no value>") {
				t.Errorf("%s: message %s rendered as %q", lang, id, got)
			}
		}
	}
}
