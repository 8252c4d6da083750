package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jobPageHTML = `<!DOCTYPE html>
<html>
<head><title>Job</title><style>body { color: red; }</style></head>
<body>
  <nav>Home | Jobs | About</nav>
  <div class="job-description">
    <h1>Web Developer</h1>
    <p>Requirements:</p>
    <ul><li>PHP</li><li>MySQL</li></ul>
  </div>
  <div class="related-jobs">Other openings</div>
  <footer>Copyright</footer>
</body>
</html>`

func TestExtractMainTextContentSelector(t *testing.T) {
	text, err := ExtractMainText(jobPageHTML, JobPostingSelectors(), ".related-jobs")
	require.NoError(t, err)

	assert.Contains(t, text, "Web Developer")
	assert.Contains(t, text, "PHP")
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "Other openings")
	assert.NotContains(t, text, "Copyright")
	assert.NotContains(t, text, "color: red")
}

func TestExtractMainTextFallsBackToBody(t *testing.T) {
	html := `<html><body><p>plain page text</p></body></html>`

	text, err := ExtractMainText(html, JobPostingSelectors())
	require.NoError(t, err)

	assert.Equal(t, "plain page text", text)
}

func TestCleanWhitespace(t *testing.T) {
	got := cleanWhitespace("  first line  \n\n   \n  second line\n")
	assert.Equal(t, "first line\nsecond line", got)
}

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url  string
		want Platform
	}{
		{"https://www.camhr.com/a/job/123", PlatformCamHR},
		{"https://bongthom.com/announcement/456", PlatformBongThom},
		{"https://www.linkedin.com/jobs/view/789", PlatformLinkedIn},
		{"https://example.com/careers", PlatformUnknown},
		{"://bad", PlatformUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectPlatform(tt.url), tt.url)
	}
}

func TestPlatformSelectors(t *testing.T) {
	assert.Contains(t, PlatformContentSelectors(PlatformCamHR), ".job-detail")
	assert.Contains(t, PlatformContentSelectors(PlatformLinkedIn), ".description__text")
	assert.Equal(t, JobPostingSelectors(), PlatformContentSelectors(PlatformUnknown))

	assert.Contains(t, PlatformNoiseSelectors(PlatformBongThom), ".announcement-apply")
	assert.Contains(t, PlatformNoiseSelectors(PlatformUnknown), ".related-jobs")
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser("short"))
	assert.True(t, ShouldUseBrowser("   "))
	assert.False(t, ShouldUseBrowser(strings.Repeat("job posting text ", 50)))
}

func TestFetchErrorFormatting(t *testing.T) {
	err := &Error{URL: "https://example.com", Message: "HTTP status 404"}
	assert.Contains(t, err.Error(), "https://example.com")
	assert.Contains(t, err.Error(), "404")
	assert.Nil(t, err.Unwrap())
}

func TestURLFetchesPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer srv.Close()

	result, err := URL(context.Background(), srv.URL, nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "ok")
	assert.Equal(t, "text/html", result.ContentType)
}

func TestURLNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	result, err := URL(context.Background(), srv.URL, nil)
	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
}

func TestURLRejectsInvalid(t *testing.T) {
	_, err := URL(context.Background(), "not-a-url", nil)
	require.Error(t, err)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "not-a-url", fetchErr.URL)
}
