package utils

import "strings"

// Slugify превращает название в URL-безопасный slug:
// нижний регистр, все не-ASCII и небуквенные последовательности
// схлопываются в один дефис, дефисы по краям убираются
func Slugify(name string) string {
	name = strings.ToLower(name)

	var b strings.Builder
	lastHyphen := true // чтобы не начинать с дефиса
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}
