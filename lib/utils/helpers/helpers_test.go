package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	require.Equal(t, "senior-go-engineer", Slugify("Senior Go Engineer"))
	require.Equal(t, "c-developer-remote", Slugify("C++ Developer (Remote)"))
	require.Equal(t, "a-b", Slugify("  a   b  "))
	require.Equal(t, "", Slugify("!!!"))
}
