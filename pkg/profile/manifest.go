package profile

import jsoniter "github.com/json-iterator/go"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// packagesManifest mirrors the installed-plugins manifest layout: an
// "installed" map of package id -> descriptor.
type packagesManifest struct {
	Installed map[string]installedPackage `json:"installed"`
}

type installedPackage struct {
	PackageInfo packageInfo `json:"package_info"`
}

type packageInfo struct {
	DisplayName    string        `json:"display_name"`
	PackageVersion string        `json:"package_version"`
	Description    string        `json:"description"`
	Author         packageAuthor `json:"author"`
	Website        string        `json:"website"`
}

type packageAuthor struct {
	DisplayName string `json:"display_name"`
}
