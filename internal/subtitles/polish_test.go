package subtitles

import "testing"

func TestPolish(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"space after period", "Hij kwam.Zij ging.", "Hij kwam. Zij ging."},
		{"space after comma", "ja,nee", "ja, nee"},
		{"space after question mark", "Echt?Ja!", "Echt? Ja!"},
		{"space after exclamation mark", "Kom!Nu meteen.", "Kom! Nu meteen."},
		{"collapse space runs", "te  veel   spaties", "te veel spaties"},
		{"line-break ellipsis removed", "Hij wilde... maar durfde niet", "Hij wilde maar durfde niet"},
		{"mid-word ellipsis spaced", "wacht...even", "wacht... even"},
		{"trailing ellipsis kept", "Hij zei...", "Hij zei..."},
		{"double dot promoted", "Dat was jaar.. geleden", "Dat was jaar... geleden"},
		{"lowercase after period untouched", "bijv. zoals dit", "bijv. zoals dit"},
		{"comma already spaced", "Een echte zin, toch", "Een echte zin, toch"},
		{"already clean", "Niets aan te doen.", "Niets aan te doen."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Polish(tc.in); got != tc.want {
				t.Fatalf("Polish(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
