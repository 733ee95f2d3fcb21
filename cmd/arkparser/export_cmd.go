package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/vertyco/arkparser"
	"github.com/vertyco/arkparser/domain"
	"github.com/vertyco/arkparser/export"
)

var outDir string

func runExport(cmd *cobra.Command, args []string) error {
	var mapCfg *arkparser.MapConfig
	if mapName != "" {
		if cfg, ok := arkparser.MapConfigFor(mapName); ok {
			mapCfg = &cfg
		} else {
			log.Printf("unrecognized map %q, exporting without GPS coordinates", mapName)
		}
	}

	for _, path := range args {
		if err := exportFile(path, mapCfg); err != nil {
			log.Printf("error exporting %s: %v", path, err)
		}
	}
	return nil
}

func exportFile(path string, mapCfg *arkparser.MapConfig) error {
	result, err := arkparser.Load(path, nil)
	if err != nil {
		return err
	}

	save, ok := result.(*arkparser.WorldSave)
	if !ok {
		return fmt.Errorf("%s is not a world save, export only supports world-save files", path)
	}

	ws := domain.NewWorldSave(save)

	if err := writeDoc("ASV_Tamed.json", export.TamedCreatures(ws, mapCfg)); err != nil {
		return err
	}
	if err := writeDoc("ASV_Wild.json", export.WildCreatures(ws, mapCfg)); err != nil {
		return err
	}
	if err := writeDoc("ASV_Structures.json", export.Structures(ws, mapCfg)); err != nil {
		return err
	}
	return nil
}

func writeDoc(name string, doc any) error {
	var (
		raw []byte
		err error
	)
	if jsonPretty {
		raw, err = export.MarshalIndent(doc)
	} else {
		raw, err = json.Marshal(doc)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outDir, name), raw, 0o644)
}
