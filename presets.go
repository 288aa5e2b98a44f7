package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
)

// Preset is the on-disk/built-in description of one superscope: four
// scripts plus a few host knobs.
type Preset struct {
	Name           string
	Init           string
	Frame          string
	Beat           string
	Point          string
	Points         bool // draw points instead of lines
	InitEveryFrame bool
	TimeStep       float64
}

// Scope instantiates a fresh Superscope from the preset.
func (p *Preset) Scope() *Superscope {
	s := CreateSuperscope(p.Name)
	s.InitScript = p.Init
	s.FrameScript = p.Frame
	s.BeatScript = p.Beat
	s.PointScript = p.Point
	s.InitEveryFrame = p.InitEveryFrame
	s.TimeStep = p.TimeStep
	if p.Points {
		s.DrawMode = DrawPoints
	}
	return s
}

// BuiltinPresets are always available; user presets from PresetDir are
// appended after them.
var BuiltinPresets = []Preset{
	{
		Name:  "spiral",
		Init:  "n=800",
		Frame: "t=t-0.05",
		Point: "d=i+v*0.2; r=t+i*$PI*4; x=cos(r)*d; y=sin(r)*d; red=i; green=1-i; blue=0.5+0.5*sin(t)",
	},
	{
		Name:  "oscilloscope",
		Init:  "n=576",
		Point: "x=i*2-1; y=v*0.8; red=1; green=1-abs(v); blue=0.2",
	},
	{
		Name:  "ring",
		Init:  "n=512",
		Frame: "t=t+0.02",
		Point: "r=i*$PI*2; d=0.5+v*0.3; x=cos(r+t)*d; y=sin(r+t)*d; red=0.3+abs(v); green=0.4; blue=1-i",
	},
	{
		Name:  "bouncing beat",
		Init:  "n=100; ty=0",
		Frame: "t=t+0.01; ty=ty*0.95",
		Beat:  "ty=1",
		Point: "x=i*2-1; y=sin(i*$PI*6+t*8)*ty*0.7; red=ty; green=0.2+0.8*i; blue=1-ty",
	},
	{
		Name:   "spectrum dots",
		Init:   "n=256",
		Points: true,
		Point:  "x=i*2-1; y=abs(v)*1.6-0.8; skip=(abs(v)<0.001); red=1; green=1-i; blue=i",
	},
}

// PresetDir is where user scope files live, one ".scope" file per preset.
func PresetDir() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".phoenixvis", "presets"), nil
}

// LoadPresets returns the builtin presets plus any user ones. A missing
// preset directory is not an error.
func LoadPresets() ([]Preset, error) {
	presets := make([]Preset, len(BuiltinPresets))
	copy(presets, BuiltinPresets)
	dir, err := PresetDir()
	if err != nil {
		return presets, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return presets, nil
		}
		return presets, err
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".scope") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	for _, name := range names {
		preset, err := LoadPresetFile(filepath.Join(dir, name))
		if err != nil {
			logger.Warn("skipping preset", "file", name, "error", err)
			continue
		}
		presets = append(presets, *preset)
	}
	return presets, nil
}

// LoadPresetFile parses a scope file. The format is INI-like sections
// [init] [frame] [beat] [point] holding script lines, plus an [options]
// section with key=value pairs (points, initeveryframe, timestep).
func LoadPresetFile(path string) (*Preset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	preset := &Preset{
		Name: strings.TrimSuffix(filepath.Base(path), ".scope"),
	}
	sections := map[string]*strings.Builder{
		"init":  {},
		"frame": {},
		"beat":  {},
		"point": {},
	}
	section := ""
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.ToLower(line[1 : len(line)-1])
			if _, ok := sections[section]; !ok && section != "options" {
				return nil, fmt.Errorf("%s:%d: unknown section [%s]", path, lineNo, section)
			}
			continue
		}
		if section == "options" {
			if err := preset.setOption(line); err != nil {
				return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
			}
			continue
		}
		sb, ok := sections[section]
		if !ok {
			return nil, fmt.Errorf("%s:%d: script line outside a section", path, lineNo)
		}
		if sb.Len() > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(strings.TrimSuffix(line, ";"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	preset.Init = sections["init"].String()
	preset.Frame = sections["frame"].String()
	preset.Beat = sections["beat"].String()
	preset.Point = sections["point"].String()
	return preset, nil
}

func (p *Preset) setOption(line string) error {
	key, value, found := strings.Cut(line, "=")
	if !found {
		return fmt.Errorf("malformed option %q", line)
	}
	key = strings.TrimSpace(strings.ToLower(key))
	value = strings.TrimSpace(value)
	switch key {
	case "name":
		p.Name = value
	case "points":
		p.Points = value == "1" || value == "true"
	case "initeveryframe":
		p.InitEveryFrame = value == "1" || value == "true"
	case "timestep":
		ts, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("bad timestep %q", value)
		}
		p.TimeStep = ts
	default:
		return fmt.Errorf("unknown option %q", key)
	}
	return nil
}
