package main

import (
	"fmt"
	"slices"
)

// Master data repositories per server region.
var SERVER_REPOS = map[string]string{
	"cn": "haruki-sekai-sc-master",
	"jp": "haruki-sekai-master",
	"en": "haruki-sekai-en-master",
	"tw": "haruki-sekai-tc-master",
	"kr": "haruki-sekai-kr-master",
}

var SERVER_NAMES = map[string]string{
	"cn": "简体中文",
	"jp": "日本語",
	"en": "English",
	"tw": "繁體中文",
	"kr": "한국어",
}

type Server struct {
	Code        string
	Repo        string
	DisplayName string
}

func ResolveServer(code string) (Server, error) {
	repo, ok := SERVER_REPOS[code]
	if !ok {
		return Server{}, fmt.Errorf("unknown server: %s", code)
	}

	return Server{
		Code:        code,
		Repo:        repo,
		DisplayName: SERVER_NAMES[code],
	}, nil
}

func ServerCodes() []string {
	codes := make([]string, 0, len(SERVER_REPOS))
	for code := range SERVER_REPOS {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}
