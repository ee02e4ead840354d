package intake

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/umalmyha/imaging-leads/internal/model"
)

func TestNormalizePhone(t *testing.T) {
	require.Equal(t, "4155550100", NormalizePhone("(415) 555-0100"), "all non-digits must be removed")
	require.Equal(t, "14155550100", NormalizePhone("+1 415.555.0100"), "all non-digits must be removed")
	require.Equal(t, "", NormalizePhone("call me"), "no digits must give empty phone")
}

func TestNormalizeImagingType(t *testing.T) {
	t.Log("known types are lower-cased")
	{
		it, ok := NormalizeImagingType(" MRI ")
		require.True(t, ok)
		require.Equal(t, model.ImagingTypeMRI, it)
	}

	t.Log("x-ray alias resolves to xray")
	{
		it, ok := NormalizeImagingType("X-Ray")
		require.True(t, ok)
		require.Equal(t, model.ImagingTypeXRay, it)
	}

	t.Log("unknown type is reported")
	{
		it, ok := NormalizeImagingType("Dexa")
		require.False(t, ok)
		require.Equal(t, model.ImagingType("dexa"), it)
	}
}

func TestUtmSource(t *testing.T) {
	src := UtmSource("https://scans.example.com/?utm_source=google&utm_medium=cpc")
	require.NotNil(t, src, "utm_source is present in referrer")
	require.Equal(t, "google", *src)

	require.Nil(t, UtmSource(""), "empty referrer must give nil source")
	require.Nil(t, UtmSource("https://scans.example.com/find-scan"), "referrer without query must give nil source")
	require.Nil(t, UtmSource("://bad url%zz"), "malformed referrer must give nil source")

	src = UtmSource("not a url?utm_source=newsletter")
	require.NotNil(t, src, "query part must be parsed even if url is not absolute")
	require.Equal(t, "newsletter", *src)
}

func TestOptionalText(t *testing.T) {
	blank := "   "
	require.Nil(t, OptionalText(nil))
	require.Nil(t, OptionalText(&blank), "blank text must become nil")

	knee := " knee "
	require.Equal(t, "knee", *OptionalText(&knee))
}

func TestLastFour(t *testing.T) {
	require.Equal(t, "4242", *LastFour("4242 4242 4242 4242"))
	require.Equal(t, "12", *LastFour("12"))
	require.Nil(t, LastFour(""))
}
