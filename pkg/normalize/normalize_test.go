package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Juridico-api/pkg/normalize"
)

func TestUpper_Acentos(t *testing.T) {
	assert.Equal(t, "DIREITO PREVIDENCIÁRIO", normalize.Upper("  direito previdenciário "))
	assert.Equal(t, "AÇÃO", normalize.Upper("ação"))
}

func TestField_EmailIntacto(t *testing.T) {
	assert.Equal(t, "Ana.Silva@Alfa.com.br", normalize.Field("email", " Ana.Silva@Alfa.com.br "))
	assert.Equal(t, "ANA SILVA", normalize.Field("nome", "Ana Silva"))
}

func TestPtr_Nil(t *testing.T) {
	assert.Nil(t, normalize.UpperPtr(nil))
	assert.Nil(t, normalize.EmailPtr(nil))
	s := "beta"
	assert.Equal(t, "BETA", *normalize.UpperPtr(&s))
}
