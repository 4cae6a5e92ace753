// internal/defs/loader.go
package defs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type modelFile struct {
	Models []ModelDefinition `json:"models" yaml:"models"`
}

// LoadModels читает файл определений моделей. Формат выбирается по расширению:
// .json — JSON, всё остальное — YAML.
func LoadModels(path string) (Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model definitions file: %w", err)
	}

	var file modelFile
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &file)
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&file)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal model definitions: %w", err)
	}

	return NewLibrary(file.Models)
}

// NewLibrary собирает библиотеку и проверяет, что все модели ядра описаны.
func NewLibrary(models []ModelDefinition) (Library, error) {
	lib := make(Library, len(models))
	for _, def := range models {
		if def.ID == "" {
			return nil, errors.New("model definition without id")
		}
		if _, dup := lib[def.ID]; dup {
			return nil, fmt.Errorf("duplicate model definition %q", def.ID)
		}
		if def.Scale == [3]float32{} {
			def.Scale = [3]float32{1, 1, 1}
		}
		lib[def.ID] = def
	}
	for _, id := range []string{ModelVessel, ModelChest, ModelEnemy} {
		if _, ok := lib[id]; !ok {
			return nil, fmt.Errorf("model definition %q is missing", id)
		}
	}
	return lib, nil
}

// Builtin возвращает встроенные определения. Используются, когда файл не найден:
// все модели рисуются запасными мешами.
func Builtin() Library {
	lib, _ := NewLibrary([]ModelDefinition{
		{
			ID: ModelVessel, Path: "assets/models/ship.glb", Scale: [3]float32{1, 1, 1},
			Shape: ShapeCube, Size: [3]float32{6, 3, 14},
			Visuals: Visuals{Color: [4]uint8{230, 230, 240, 255}, Radius: 5},
		},
		{
			ID: ModelChest, Path: "assets/models/chest.glb", Scale: [3]float32{1, 1, 1},
			Shape: ShapeCube, Size: [3]float32{4, 3, 3},
			Visuals: Visuals{Color: [4]uint8{255, 215, 0, 255}, Radius: 3},
		},
		{
			ID: ModelEnemy, Path: "assets/models/enemy.glb", Scale: [3]float32{1, 1, 1},
			Shape: ShapeCube, Size: [3]float32{6, 3, 12},
			Visuals: Visuals{Color: [4]uint8{200, 40, 40, 255}, Radius: 5},
		},
	})
	return lib
}
