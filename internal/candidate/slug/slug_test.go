package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeStripsDiacritics(t *testing.T) {
	got, ok := Make("Fabián Doñate", "NV")
	assert.True(t, ok)
	assert.Equal(t, "fabian-donate-nv", got)
}

func TestMakeDeterministic(t *testing.T) {
	first, _ := Make("María José Calderón", "TX")
	second, _ := Make("María José Calderón", "TX")
	assert.Equal(t, first, second)
}

func TestMakeEmptyName(t *testing.T) {
	_, ok := Make("", "NV")
	assert.False(t, ok)
}

func TestMakeWithoutState(t *testing.T) {
	got, ok := Make("Ana Ruiz", "")
	assert.True(t, ok)
	assert.Equal(t, "ana-ruiz", got)
}

func TestMakeRemovesSpecialCharacters(t *testing.T) {
	got, _ := Make("O'Brien-García, Jr.", "az")
	assert.Equal(t, "obrien-garcia-jr-az", got)
}

func TestMakeCollapsesWhitespace(t *testing.T) {
	got, _ := Make("  Juan   Carlos  ", "nm")
	assert.Equal(t, "juan-carlos-nm", got)
}

func TestMakeLowercasesState(t *testing.T) {
	got, _ := Make("Elena Vega", "Fl")
	assert.Equal(t, "elena-vega-fl", got)
}
