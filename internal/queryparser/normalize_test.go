package queryparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("collapses whitespace runs", func(t *testing.T) {
		assert.Equal(t, "a b", Normalize("  a\n\tb  "))
	})

	t.Run("strips literal CDATA markers", func(t *testing.T) {
		assert.Equal(t, "x", Normalize("<![CDATA[ x ]]>"))
	})

	t.Run("strips markers with surrounding whitespace", func(t *testing.T) {
		assert.Equal(t, "x", Normalize("  <![CDATA[\n x \n]]>  "))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", Normalize(""))
		assert.Equal(t, "", Normalize("   \n\t  "))
	})

	t.Run("multibyte text survives", func(t *testing.T) {
		assert.Equal(t, "주문 목록 조회", Normalize("  주문   목록\n조회  "))
	})
}

func TestModuleCode(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		want     string
	}{
		{"empty name", "", "unknown"},
		{"one character", "a", "unknown"},
		{"two characters", "ab", "unknown"},
		{"exactly three characters", "B47", "b47"},
		{"longer name", "B47SA508.glue_sql", "b47"},
		{"already lower case", "b47sa508.xml", "b47"},
		{"multibyte characters count as one", "주문맵.glue_sql", "주문맵"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ModuleCode(tt.fileName))
		})
	}
}

func TestWrapCDATA(t *testing.T) {
	t.Run("nine space closing indent", func(t *testing.T) {
		assert.Equal(t, "<![CDATA[\nSELECT 1\n         ]]>", WrapCDATA("SELECT 1"))
	})

	t.Run("empty body is still wrapped", func(t *testing.T) {
		assert.Equal(t, "<![CDATA[\n\n         ]]>", WrapCDATA(""))
	})

	t.Run("interior newlines preserved", func(t *testing.T) {
		body := "SELECT A\n  FROM B\n WHERE C = 1"
		assert.Equal(t, "<![CDATA[\n"+body+"\n         ]]>", WrapCDATA(body))
	})
}
