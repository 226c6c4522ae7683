package queryparser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFixture writes an XML document under the given file name into a
// temp directory and returns its path.
func writeFixture(t *testing.T, fileName, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), fileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseQueryMap(t *testing.T) {
	input := `<queryMap desc="B47 주문   쿼리맵">
	<query id="B47SA508_1.select" desc="주문 목록 조회" fetchSize="100" isNamed="N">
		<![CDATA[
		SELECT ORDER_NO, ORDER_DATE
		  FROM ORDERS
		 WHERE STATUS = 'OPEN'
		]]>
	</query>
	<query id="B47SA508_2.update" desc="주문 상태 갱신">
		<![CDATA[ UPDATE ORDERS SET STATUS = 'DONE' ]]>
	</query>
</queryMap>`

	path := writeFixture(t, "B47SA508.glue_sql", input)
	result := Parse(path)

	require.False(t, result.IsError())
	require.Contains(t, result.Modules, "b47")
	assert.Len(t, result.Modules["b47"], 2)
	assert.Equal(t, 2, result.QueryCount())

	rec := result.Modules["b47"]["B47SA508_1.select"]
	assert.Equal(t, "B47SA508_1.select", rec.ID)
	assert.Equal(t, "주문 목록 조회", rec.Desc)
	assert.Equal(t, "B47SA508.glue_sql", rec.FileName)
	assert.Equal(t, "B47 주문 쿼리맵", rec.QueryMapDesc)

	// Interior formatting of the SQL body is preserved; only the edges are
	// trimmed before re-wrapping.
	assert.Equal(t,
		"<![CDATA[\nSELECT ORDER_NO, ORDER_DATE\n\t\t  FROM ORDERS\n\t\t WHERE STATUS = 'OPEN'\n         ]]>",
		rec.Query)
}

func TestParseBodyRoundTrip(t *testing.T) {
	// Byte-exact output contract for a minimal body.
	input := `<queryMap><query id="q1"><![CDATA[SELECT 1]]></query></queryMap>`

	path := writeFixture(t, "B47SA508.glue_sql", input)
	result := Parse(path)

	require.False(t, result.IsError())
	assert.Equal(t, "<![CDATA[\nSELECT 1\n         ]]>",
		result.Modules["b47"]["q1"].Query)
}

func TestParseBodySources(t *testing.T) {
	t.Run("escaped CDATA in child text", func(t *testing.T) {
		input := `<queryMap>
	<query id="q1"><sql>&lt;![CDATA[ SELECT A FROM B ]]&gt;</sql></query>
</queryMap>`

		path := writeFixture(t, "B47SA508.glue_sql", input)
		result := Parse(path)

		require.False(t, result.IsError())
		assert.Equal(t, "<![CDATA[\nSELECT A FROM B\n         ]]>",
			result.Modules["b47"]["q1"].Query)
	})

	t.Run("CDATA-named child without wrapper", func(t *testing.T) {
		input := `<queryMap>
	<query id="q1"><sqlCDATA>SELECT X</sqlCDATA></query>
</queryMap>`

		path := writeFixture(t, "B47SA508.glue_sql", input)
		result := Parse(path)

		require.False(t, result.IsError())
		assert.Equal(t, "<![CDATA[\nSELECT X\n         ]]>",
			result.Modules["b47"]["q1"].Query)
	})

	t.Run("plain text body", func(t *testing.T) {
		input := `<queryMap><query id="q1">  SELECT 2  </query></queryMap>`

		path := writeFixture(t, "B47SA508.glue_sql", input)
		result := Parse(path)

		require.False(t, result.IsError())
		assert.Equal(t, "<![CDATA[\nSELECT 2\n         ]]>",
			result.Modules["b47"]["q1"].Query)
	})

	t.Run("no body at all", func(t *testing.T) {
		input := `<queryMap><query id="q1"/></queryMap>`

		path := writeFixture(t, "B47SA508.glue_sql", input)
		result := Parse(path)

		require.False(t, result.IsError())
		assert.Equal(t, "<![CDATA[\n\n         ]]>",
			result.Modules["b47"]["q1"].Query)
	})

	t.Run("first CDATA child wins", func(t *testing.T) {
		input := `<queryMap>
	<query id="q1">
		<sqlCDATA>SELECT FIRST</sqlCDATA>
		<sqlCDATA>SELECT SECOND</sqlCDATA>
	</query>
</queryMap>`

		path := writeFixture(t, "B47SA508.glue_sql", input)
		result := Parse(path)

		require.False(t, result.IsError())
		assert.Equal(t, "<![CDATA[\nSELECT FIRST\n         ]]>",
			result.Modules["b47"]["q1"].Query)
	})
}

func TestParseDuplicateIDs(t *testing.T) {
	// Later queries with the same id overwrite earlier ones.
	input := `<queryMap>
	<query id="dup"><![CDATA[SELECT 1]]></query>
	<query id="dup"><![CDATA[SELECT 2]]></query>
</queryMap>`

	path := writeFixture(t, "B47SA508.glue_sql", input)
	result := Parse(path)

	require.False(t, result.IsError())
	require.Len(t, result.Modules["b47"], 1)
	assert.Equal(t, "<![CDATA[\nSELECT 2\n         ]]>",
		result.Modules["b47"]["dup"].Query)
}

func TestParseEmptyQueryMap(t *testing.T) {
	// Zero query children still yield the module key with an empty map.
	path := writeFixture(t, "B47SA508.glue_sql", `<queryMap desc="empty map"/>`)
	result := Parse(path)

	require.False(t, result.IsError())
	require.Contains(t, result.Modules, "b47")
	assert.Empty(t, result.Modules["b47"])
	assert.Equal(t, 0, result.QueryCount())
}

func TestParseMissingAttributes(t *testing.T) {
	// id and desc default to empty strings when absent.
	input := `<queryMap><query><![CDATA[SELECT 1]]></query></queryMap>`

	path := writeFixture(t, "B47SA508.glue_sql", input)
	result := Parse(path)

	require.False(t, result.IsError())
	rec, ok := result.Modules["b47"][""]
	require.True(t, ok)
	assert.Equal(t, "", rec.ID)
	assert.Equal(t, "", rec.Desc)
	assert.Equal(t, "", rec.QueryMapDesc)
}

func TestParseMalformedXML(t *testing.T) {
	path := writeFixture(t, "B47SA508.glue_sql", `<queryMap><query></queryMap>`)
	result := Parse(path)

	require.True(t, result.IsError())
	assert.Nil(t, result.Modules)

	payload, ok := result.Payload().(map[string]string)
	require.True(t, ok)
	assert.Contains(t, payload, "error")
	assert.Contains(t, payload["error"], "XML parse error")
}

func TestParseUnreadableFile(t *testing.T) {
	result := Parse(filepath.Join(t.TempDir(), "missing.glue_sql"))

	require.True(t, result.IsError())
	assert.Contains(t, result.Err, "read error")
}
