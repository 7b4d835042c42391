package state

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/pairup/internal/settings"
	"github.com/cristianoliveira/pairup/internal/tui/render"
)

type settingRow struct {
	label string
	value func(m *Model) string
}

var settingRows = []settingRow{
	{"다크 모드", func(m *Model) string { return render.OnOff(m.appSettings.DarkModeEnabled) }},
	{"알림", func(m *Model) string { return render.OnOff(m.appSettings.NotificationsEnabled) }},
	{"소리", func(m *Model) string { return render.OnOff(m.appSettings.SoundEnabled) }},
	{"진동", func(m *Model) string { return render.OnOff(m.appSettings.VibrationEnabled) }},
	{"접속 상태 표시", func(m *Model) string { return render.OnOff(m.appSettings.ShowOnlineStatus) }},
	{"매칭 알림", func(m *Model) string { return render.OnOff(m.appSettings.MatchNotifications) }},
	{"언어", func(m *Model) string { return settings.LanguageName(m.language) }},
}

const (
	rowDarkMode = iota
	rowNotifications
	rowSound
	rowVibration
	rowOnlineStatus
	rowMatchNotifications
	rowLanguage
)

// toggleSetting flips the boolean at row, or cycles the language.
// Dark mode goes through the bus; the palette updates when the event arrives.
func (m *Model) toggleSetting(row int) tea.Cmd {
	s := m.appSettings
	switch row {
	case rowDarkMode:
		if err := m.backend.SetDarkMode(m.ctx, !s.DarkModeEnabled); err != nil {
			return m.setStatus("설정을 저장하지 못했습니다: " + err.Error())
		}
		m.appSettings = m.backend.Settings(m.ctx)
		return nil
	case rowLanguage:
		next := nextLanguage(m.language)
		if err := m.backend.SetLanguage(m.ctx, next); err != nil {
			return m.setStatus(err.Error())
		}
		m.language = next
		return nil
	case rowNotifications:
		s.NotificationsEnabled = !s.NotificationsEnabled
	case rowSound:
		s.SoundEnabled = !s.SoundEnabled
	case rowVibration:
		s.VibrationEnabled = !s.VibrationEnabled
	case rowOnlineStatus:
		s.ShowOnlineStatus = !s.ShowOnlineStatus
	case rowMatchNotifications:
		s.MatchNotifications = !s.MatchNotifications
	default:
		return nil
	}
	if err := m.backend.SaveSettings(m.ctx, s); err != nil {
		return m.setStatus("설정을 저장하지 못했습니다: " + err.Error())
	}
	m.appSettings = s
	return nil
}

func nextLanguage(current string) string {
	codes := settings.Languages()
	for i, c := range codes {
		if c == current {
			return codes[(i+1)%len(codes)]
		}
	}
	return codes[0]
}
