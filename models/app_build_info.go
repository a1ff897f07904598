// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo is the metadata stamped into the server binary with
//
//	-ldflags "-X main.buildVersion=... -X main.buildDate=... -X main.buildCommit=..."
//
// A plain go build leaves every value empty.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: version,
		date:    date,
		commit:  commit,
	}
}

// Version returns the stamped version, or fallback for an unstamped build.
func (a AppBuildInfo) Version(fallback string) string {
	if a.version == "" {
		return fallback
	}
	return a.version
}

// AppInfo describes the application called name. fallbackVersion is
// reported when the binary carries no version of its own.
func (a AppBuildInfo) AppInfo(name, fallbackVersion string) AppInfo {
	return AppInfo{
		Name:        name,
		Version:     a.Version(fallbackVersion),
		BuildDate:   a.date,
		BuildCommit: a.commit,
	}
}
