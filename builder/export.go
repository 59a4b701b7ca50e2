package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"VoxelCake/shared/materials"
	"VoxelCake/shared/pixelart"
	"VoxelCake/shared/sound"

	"github.com/disintegration/imaging"
)

// sheetScale amplia cada textura 16x16 para 128x128 na prévia.
const sheetScale = 8

// exportAssets grava a folha de texturas, os atlas por tipo e o "pop" em dir.
func exportAssets(dir string, seed int64) ([]string, error) {
	rng := rand.New(rand.NewSource(seed))
	textures, err := pixelart.GenerateDefaults(pixelart.NewGenerator(rng))
	if err != nil {
		return nil, fmt.Errorf("falha ao gerar texturas: %w", err)
	}

	var files []string

	sheetPath := filepath.Join(dir, "textures.png")
	if err := imaging.Save(pixelart.Sheet(textures.Ordered(), sheetScale), sheetPath); err != nil {
		return nil, fmt.Errorf("falha ao salvar %s: %w", sheetPath, err)
	}
	files = append(files, sheetPath)

	cat, err := materials.NewCatalog(textures)
	if err != nil {
		return nil, err
	}
	for _, kind := range materials.Kinds {
		faces, ok := cat.Faces(kind)
		if !ok || !faces.Textured() {
			continue
		}
		path := filepath.Join(dir, fmt.Sprintf("atlas_%s.png", kind))
		atlas := imaging.Resize(faces.Atlas(), pixelart.Size*int(materials.FaceCount)*sheetScale, 0, imaging.NearestNeighbor)
		if err := imaging.Save(atlas, path); err != nil {
			return nil, fmt.Errorf("falha ao salvar %s: %w", path, err)
		}
		files = append(files, path)
	}

	wavPath := filepath.Join(dir, "pop.wav")
	f, err := os.Create(wavPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if err := sound.EncodeWAV(f, sound.Pop().Synthesize(sound.SampleRate)); err != nil {
		return nil, fmt.Errorf("falha ao salvar %s: %w", wavPath, err)
	}
	files = append(files, wavPath)

	return files, nil
}
