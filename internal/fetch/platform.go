package fetch

import (
	"net/url"
	"strings"
)

// Platform is a known job board.
type Platform string

const (
	// PlatformCamHR is the CamHR job board.
	PlatformCamHR Platform = "camhr"
	// PlatformBongThom is the BongThom job board.
	PlatformBongThom Platform = "bongthom"
	// PlatformLinkedIn is LinkedIn job pages.
	PlatformLinkedIn Platform = "linkedin"
	// PlatformUnknown is an unrecognized board.
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the job board from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}
	host := strings.ToLower(parsed.Host)

	switch {
	case strings.Contains(host, "camhr.com"):
		return PlatformCamHR
	case strings.Contains(host, "bongthom.com"):
		return PlatformBongThom
	case strings.Contains(host, "linkedin.com"):
		return PlatformLinkedIn
	}
	return PlatformUnknown
}

// PlatformContentSelectors returns content selectors tuned per board.
func PlatformContentSelectors(platform Platform) []string {
	switch platform {
	case PlatformCamHR:
		return []string{
			".job-detail",
			".job-description",
			".detail-content",
			"#content",
		}
	case PlatformBongThom:
		return []string{
			".job-announcement",
			".announcement-detail",
			".content-detail",
			".content",
		}
	case PlatformLinkedIn:
		return []string{
			".description__text",
			".show-more-less-html__markup",
			".jobs-description-content",
			"main",
		}
	default:
		return JobPostingSelectors()
	}
}

// PlatformNoiseSelectors returns noise exclusions per board.
func PlatformNoiseSelectors(platform Platform) []string {
	common := []string{
		"form",
		".apply-button-container",
		".social-share",
		".share-buttons",
		".cookie-consent",
		".related-jobs",
		".similar-jobs",
	}

	switch platform {
	case PlatformCamHR:
		return append(common, ".company-other-jobs", ".job-apply")
	case PlatformBongThom:
		return append(common, ".announcement-apply", ".other-announcements")
	case PlatformLinkedIn:
		return append(common, ".top-card-layout__cta-container", ".similar-jobs__list")
	default:
		return common
	}
}
