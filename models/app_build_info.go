// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo describes the running server binary. It is the body of
// GET /api/version and is printed by catalogctl's version command.
//
// Version comes from configuration when set there, otherwise from the value
// injected by linker flags. Date and Commit are always linker-injected.
type AppBuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"build_date"`
	Commit  string `json:"build_commit"`
}

// NewAppBuildInfo constructs [AppBuildInfo], replacing empty values with
// "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orNA(version),
		Date:    orNA(date),
		Commit:  orNA(commit),
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
