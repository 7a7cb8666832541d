package postforge_test

import (
	"testing"

	"github.com/fwojciec/postforge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebsiteContent_Validate(t *testing.T) {
	t.Parallel()

	valid := postforge.WebsiteContent{
		Title:       "Example",
		Description: "",
		MainContent: "# Example\n\nBody text.",
		URL:         "https://example.com/post",
	}

	t.Run("accepts a valid record", func(t *testing.T) {
		t.Parallel()

		c := valid
		assert.NoError(t, c.Validate())
	})

	t.Run("requires a title", func(t *testing.T) {
		t.Parallel()

		c := valid
		c.Title = ""
		err := c.Validate()
		require.Error(t, err)
		assert.Equal(t, postforge.EINVALID, postforge.ErrorCode(err))
	})

	t.Run("requires main content", func(t *testing.T) {
		t.Parallel()

		c := valid
		c.MainContent = ""
		err := c.Validate()
		require.Error(t, err)
		assert.Equal(t, postforge.EINVALID, postforge.ErrorCode(err))
	})

	t.Run("requires an absolute URL", func(t *testing.T) {
		t.Parallel()

		c := valid
		c.URL = "/relative/path"
		err := c.Validate()
		require.Error(t, err)
		assert.Equal(t, postforge.EINVALIDURL, postforge.ErrorCode(err))
	})

	t.Run("allows an empty description", func(t *testing.T) {
		t.Parallel()

		c := valid
		c.Description = ""
		assert.NoError(t, c.Validate())
	})
}

func TestValidateURL(t *testing.T) {
	t.Parallel()

	t.Run("accepts absolute URLs", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, postforge.ValidateURL("https://example.com"))
		assert.NoError(t, postforge.ValidateURL("http://example.com/a/b?q=1"))
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"not-a-url", "", "example.com", "https://", "/path/only"} {
			err := postforge.ValidateURL(raw)
			require.Error(t, err, "url %q", raw)
			assert.Equal(t, postforge.EINVALIDURL, postforge.ErrorCode(err), "url %q", raw)
		}
	})
}
