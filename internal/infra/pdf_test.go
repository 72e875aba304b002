package infra

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestRecortar(t *testing.T) {
	assert.Equal(t, "corto", recortar("corto", 22))

	// Un nombre con tildes en el borde del corte no puede quedar con una
	// runa partida.
	largo := "Camiseta Atlético Atlético Atlético"
	cortado := recortar(largo, 22)
	assert.True(t, utf8.ValidString(cortado))
	assert.Equal(t, 22, len([]rune(cortado)))
	assert.Equal(t, "…", string([]rune(cortado)[21]))

	// El límite cuenta runas, no bytes: 22 runas con tilde entran enteras.
	justo := "Atlético Atlético ok.."
	assert.Equal(t, justo, recortar(justo, 22))
}
