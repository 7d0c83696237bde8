package termbidi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionForLocale(t *testing.T) {
	cases := []struct {
		locale string
		want   Direction
	}{
		{"ar-EG", RightToLeft},
		{"ar", RightToLeft},
		{"he-IL", RightToLeft},
		{"fa-IR", RightToLeft},
		{"ur", RightToLeft},
		{"en-US", LeftToRight},
		{"de-DE", LeftToRight},
		{"ja-JP", LeftToRight},
		{"", Auto},
	}
	for _, c := range cases {
		got := directionForLocale(c.locale)
		assert.Equal(t, c.want, got, "locale %q", c.locale)
	}
}
