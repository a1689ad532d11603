package endpoint

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptorPathPrimary(t *testing.T) {
	d := Descriptor{Operation: "getBalance", Method: http.MethodGet, API: Primary, Template: "{accountId}/balance"}
	path, err := d.Path("accounts", "0.0.1001")
	require.NoError(t, err)
	assert.Equal(t, "accounts/0.0.1001/balance", path)
}

func TestDescriptorPathMirror(t *testing.T) {
	d := Descriptor{Operation: "getTokenBalances", Method: http.MethodGet, API: Mirror, Template: "tokens/{tokenId}/balances"}
	path, err := d.Path("hts", "0.0.500")
	require.NoError(t, err)
	assert.Equal(t, "mirrors/hts/tokens/0.0.500/balances", path)
}

func TestDescriptorPathEmptyTemplate(t *testing.T) {
	d := Descriptor{Operation: "create", Method: http.MethodPost, API: Primary}
	path, err := d.Path("accounts")
	require.NoError(t, err)
	assert.Equal(t, "accounts", path)

	d.API = Mirror
	path, err = d.Path("accounts")
	require.NoError(t, err)
	assert.Equal(t, "mirrors/accounts", path)
}

func TestDescriptorPathMultipleValues(t *testing.T) {
	d := Descriptor{Operation: "getNft", API: Mirror, Template: "tokens/{tokenId}/nfts/{serialNumber}/transactions"}
	path, err := d.Path("hts", "0.0.500", "7")
	require.NoError(t, err)
	assert.Equal(t, "mirrors/hts/tokens/0.0.500/nfts/7/transactions", path)
}

func TestDescriptorPathInterpolatesLiterally(t *testing.T) {
	d := Descriptor{Operation: "get", API: Mirror, Template: "{transactionId}"}
	path, err := d.Path("transactions", "0.0.1001@1700000000.000000001")
	require.NoError(t, err)
	assert.Equal(t, "mirrors/transactions/0.0.1001@1700000000.000000001", path)
}

func TestDescriptorPathArgumentMismatch(t *testing.T) {
	d := Descriptor{Operation: "getBalance", Template: "{accountId}/balance"}

	_, err := d.Path("accounts")
	assert.Error(t, err)

	_, err = d.Path("accounts", "0.0.1", "0.0.2")
	assert.Error(t, err)

	_, err = d.Path("accounts", "  ")
	assert.Error(t, err)
}

func TestDescriptorPlaceholders(t *testing.T) {
	d := Descriptor{Template: "tokens/{tokenId}/nfts/{serialNumber}"}
	assert.Equal(t, []string{"tokenId", "serialNumber"}, d.Placeholders())
	assert.Empty(t, Descriptor{}.Placeholders())
}

func TestDescriptorMutating(t *testing.T) {
	assert.False(t, Descriptor{Method: http.MethodGet}.Mutating())
	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		assert.True(t, Descriptor{Method: method}.Mutating(), method)
	}
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "primary", Primary.String())
	assert.Equal(t, "mirror", Mirror.String())
	assert.Equal(t, "api(9)", API(9).String())
	assert.Equal(t, "none", NoParams.String())
	assert.Equal(t, "query", QueryParams.String())
	assert.Equal(t, "body", BodyParams.String())
	assert.Equal(t, "placement(9)", Placement(9).String())
}

func TestCatalogueValidate(t *testing.T) {
	valid := Catalogue{
		{Operation: "create", Method: http.MethodPost, API: Primary, Params: BodyParams, Shape: ShapeObject},
		{Operation: "list", Method: http.MethodGet, API: Mirror, Params: QueryParams, Shape: ShapePage},
		{Operation: "get", Method: http.MethodGet, API: Primary, Template: "{id}", Shape: ShapeObject},
	}
	require.NoError(t, valid.Validate())

	cases := map[string]Catalogue{
		"duplicate": {
			{Operation: "get", Method: http.MethodGet, Shape: ShapeObject},
			{Operation: "get", Method: http.MethodGet, Shape: ShapeObject},
		},
		"unnamed":         {{Method: http.MethodGet, Shape: ShapeObject}},
		"bad method":      {{Operation: "x", Method: "TRACE", Shape: ShapeObject}},
		"mirror mutation": {{Operation: "x", Method: http.MethodPost, API: Mirror, Shape: ShapeObject}},
		"get with body":   {{Operation: "x", Method: http.MethodGet, Params: BodyParams, Shape: ShapeObject}},
		"unknown shape":   {{Operation: "x", Method: http.MethodGet, Shape: "list"}},
		"primary page":    {{Operation: "x", Method: http.MethodGet, API: Primary, Shape: ShapePage}},
		"empty segment":   {{Operation: "x", Method: http.MethodGet, Template: "a//b", Shape: ShapeObject}},
		"bad placeholder": {{Operation: "x", Method: http.MethodGet, Template: "{id", Shape: ShapeObject}},
	}
	for name, catalogue := range cases {
		assert.Error(t, catalogue.Validate(), name)
	}
}

func TestCatalogueLookupAndClone(t *testing.T) {
	catalogue := Catalogue{{Operation: "get", Method: http.MethodGet}}

	found, ok := catalogue.Lookup("get")
	require.True(t, ok)
	assert.Equal(t, http.MethodGet, found.Method)

	_, ok = catalogue.Lookup("missing")
	assert.False(t, ok)

	cloned := catalogue.Clone()
	cloned[0].Method = http.MethodPost
	assert.Equal(t, http.MethodGet, catalogue[0].Method)
}

func TestLinks(t *testing.T) {
	assert.False(t, Links{}.HasNext())
	assert.True(t, Links{Next: "/api/v1/accounts?limit=1"}.HasNext())
	assert.Equal(t, int64(0), *Int64(0))
	assert.False(t, *Bool(false))
}
