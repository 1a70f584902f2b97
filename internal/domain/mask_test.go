package domain

import "testing"

func TestMaskSecret(t *testing.T) {
	cases := []struct {
		in         string
		head, tail int
		want       string
	}{
		{"", 4, 4, ""},
		{"short", 4, 4, "********"},
		{"sk-ant-0123456789abcdef", 6, 4, "sk-ant...cdef"},
		{"sk-ant-0123456789abcdef", 6, 0, "sk-ant..."},
		{"abc", -1, -1, "********"},
		{"abcd", -1, -1, "..."},
		{"123456789", 4, 4, "********"},
		{"1234567890a", 4, 4, "********"},
		{"1234567890ab", 4, 4, "1234...90ab"},
	}
	for _, c := range cases {
		if got := MaskSecret(c.in, c.head, c.tail); got != c.want {
			t.Errorf("MaskSecret(%q,%d,%d)=%q, want %q", c.in, c.head, c.tail, got, c.want)
		}
	}
}
