package postforge

// Platform identifies a social media platform supported by the registry.
type Platform string

// Supported platforms.
const (
	PlatformTwitter   Platform = "twitter"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
)

// MaxHashtags is the maximum number of hashtags allowed per post.
const MaxHashtags = 5

// platformLimits maps each platform to its character limit. This table is
// the single point of platform-specific knowledge; extending to a new
// platform means adding one entry here plus a display name below.
var platformLimits = map[Platform]int{
	PlatformTwitter:   280,
	PlatformLinkedIn:  3000,
	PlatformFacebook:  63206,
	PlatformInstagram: 2200,
}

// platformOrder is the canonical registry order, used when no explicit
// platform set is requested.
var platformOrder = []Platform{
	PlatformTwitter,
	PlatformLinkedIn,
	PlatformFacebook,
	PlatformInstagram,
}

// displayNames maps platforms to their user-facing names.
var displayNames = map[Platform]string{
	PlatformTwitter:   "Twitter (X)",
	PlatformLinkedIn:  "LinkedIn",
	PlatformFacebook:  "Facebook",
	PlatformInstagram: "Instagram",
}

// Platforms returns all registry platforms in canonical order.
// The returned slice is a copy and safe to modify.
func Platforms() []Platform {
	ps := make([]Platform, len(platformOrder))
	copy(ps, platformOrder)
	return ps
}

// LimitFor returns the character limit for a platform.
// Returns EUNKNOWNPLATFORM if the platform is not in the registry.
func LimitFor(p Platform) (int, error) {
	limit, ok := platformLimits[p]
	if !ok {
		return 0, Errorf(EUNKNOWNPLATFORM, "unknown platform %q", p)
	}
	return limit, nil
}

// ParsePlatform converts a string to a registry Platform.
// Returns EUNKNOWNPLATFORM if the string names no registered platform.
func ParsePlatform(s string) (Platform, error) {
	p := Platform(s)
	if _, ok := platformLimits[p]; !ok {
		return "", Errorf(EUNKNOWNPLATFORM, "unknown platform %q", s)
	}
	return p, nil
}

// DisplayName returns the user-facing name for a platform.
// Unregistered platforms fall back to their raw string form.
func DisplayName(p Platform) string {
	if name, ok := displayNames[p]; ok {
		return name
	}
	return string(p)
}

// ValidatePlatforms checks a requested platform set: it must be non-empty,
// contain only registry platforms, and contain no duplicates.
func ValidatePlatforms(ps []Platform) error {
	if len(ps) == 0 {
		return Errorf(EEMPTYPLATFORMS, "no platforms requested")
	}
	seen := make(map[Platform]bool, len(ps))
	for _, p := range ps {
		if _, ok := platformLimits[p]; !ok {
			return Errorf(EUNKNOWNPLATFORM, "unknown platform %q", p)
		}
		if seen[p] {
			return Errorf(EINVALID, "platform %q requested more than once", p)
		}
		seen[p] = true
	}
	return nil
}
