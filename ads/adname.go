package ads

import (
	"regexp"
)

// Ad names follow the buying team's naming convention:
//
//	<account>-<channel>_<domain>_<buying method>_<category>_...
//
// e.g. "3-ch83080_example.com_bm_news_0517". The account is the single digit
// before the first '-', the channel ID sits between the first '-' and the
// first '_', and the remaining fields are the '_' separated tokens after it.
var (
	account      = regexp.MustCompile(`^\s*(\d)-`)
	channel      = regexp.MustCompile(`^\s*\d-([^_]+)`)
	domain       = regexp.MustCompile(`^\s*\d-[^_]+_([^_]+)`)
	buyingMethod = regexp.MustCompile(`^\s*\d-[^_]+_[^_]+_([^_]+)`)
	category     = regexp.MustCompile(`^\s*\d-[^_]+_[^_]+_[^_]+_([^_]+)`)
)

// ParseAccount extracts the account digit from an ad name, e.g.
// "3-ch83080_example.com_bm_news" yields "3".
func ParseAccount(adName string) string {
	if m := account.FindStringSubmatch(adName); m != nil {
		return m[1]
	}

	return ""
}

// ParseChannelID extracts the channel ID from an ad name, e.g.
// "3-ch83080_example.com_bm_news" yields "ch83080".
func ParseChannelID(adName string) string {
	if m := channel.FindStringSubmatch(adName); m != nil {
		return m[1]
	}

	return ""
}

// ParseDomain extracts the domain token from an ad name. Ad names that do not
// follow the naming convention yield "UNKNOWN".
func ParseDomain(adName string) string {
	if m := domain.FindStringSubmatch(adName); m != nil {
		return m[1]
	}

	return "UNKNOWN"
}

// ParseBuyingMethod extracts the buying method token from an ad name. Ad
// names that do not follow the naming convention yield "UNKNOWN".
func ParseBuyingMethod(adName string) string {
	if m := buyingMethod.FindStringSubmatch(adName); m != nil {
		return m[1]
	}

	return "UNKNOWN"
}

// ParseCategory extracts the category token from an ad name. Ad names that do
// not follow the naming convention yield "UNKNOWN".
func ParseCategory(adName string) string {
	if m := category.FindStringSubmatch(adName); m != nil {
		return m[1]
	}

	return "UNKNOWN"
}
