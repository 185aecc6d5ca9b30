package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Cà phê", "ca phe"},
		{"Trà Sữa", "tra sua"},
		{"Đường", "duong"},
		{"đồ uống", "do uong"},
		{"Coca-Cola", "coca-cola"},
		{"", ""},
		{"MILK", "milk"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, fold(tt.in), "fold(%q)", tt.in)
	}
}

func TestFoldContains(t *testing.T) {
	assert.True(t, foldContains("Cà phê sữa đá", "ca phe"))
	assert.True(t, foldContains("ca phe sua da", "Cà Phê"))
	assert.True(t, foldContains("Nước Đường", "duong"))
	assert.False(t, foldContains("Trà sữa", "ca phe"))
}
