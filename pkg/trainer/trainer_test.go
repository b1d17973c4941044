package trainer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Info)
		wantErr bool
	}{
		{"default", func(*Info) {}, false},
		{"female", func(i *Info) { i.Gender = 1 }, false},
		{"bad gender", func(i *Info) { i.Gender = 2 }, true},
		{"tid too big", func(i *Info) { i.TID = 0x10000 }, true},
		{"negative sid", func(i *Info) { i.SID = -1 }, true},
		{"game too big", func(i *Info) { i.Game = 256 }, true},
		{"no generation", func(i *Info) { i.Generation = 0 }, true},
		{"long name", func(i *Info) { i.OT = "ABCDEFGHIJKLM" }, true},
		{"empty name", func(i *Info) { i.OT = "" }, false},
		{"full name", func(i *Info) { i.OT = "ABCDEFGHIJKL" }, false},
		{"astral name fits", func(i *Info) { i.OT = "ABCDEFGHIJ\U0001F600" }, false},
		{"astral name too long", func(i *Info) { i.OT = "ABCDEFGHIJK\U0001F600" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := Default()
			tt.mutate(&info)
			err := info.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
