package config

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Labels holds the user-facing strings for one locale.
type Labels struct {
	Title            string `yaml:"title"`
	Score            string `yaml:"score"`
	Lives            string `yaml:"lives"`
	Level            string `yaml:"level"`
	Start            string `yaml:"start"`
	Paused           string `yaml:"paused"`
	Resume           string `yaml:"resume"`
	Restart          string `yaml:"restart"`
	Quit             string `yaml:"quit"`
	GameOver         string `yaml:"game_over"`
	Won              string `yaml:"won"`
	PressStart       string `yaml:"press_start"`
	GetReady         string `yaml:"get_ready"`
	LevelUnavailable string `yaml:"level_unavailable"` // printf format taking the level number
	TooSmall         string `yaml:"too_small"`
	NeedSize         string `yaml:"need_size"` // printf format taking width and height
}

var builtinLabels map[string]Labels

func init() {
	if err := yaml.Unmarshal(defaultLabelsYAML, &builtinLabels); err != nil {
		panic(fmt.Sprintf("config: embedded labels: %v", err))
	}
}

// LabelsFor returns the labels for a locale, falling back to English.
func LabelsFor(locale string) Labels {
	if l, ok := builtinLabels[locale]; ok {
		return l
	}
	return builtinLabels["en"]
}

// Locales lists the built-in locale codes, sorted.
func Locales() []string {
	out := make([]string, 0, len(builtinLabels))
	for k := range builtinLabels {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
