package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/vertyco/arkparser"
)

var (
	dumpObjects bool
	dumpMain    bool
	dumpErrors  bool
)

func prettyPrint(buf []byte) string {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, buf, "", "\t"); err != nil {
		log.Println("JSON parse error:", err)
		return string(buf)
	}
	return pretty.String()
}

func runDump(cmd *cobra.Command, args []string) error {
	for _, path := range args {
		if err := dumpFile(path); err != nil {
			log.Printf("error decoding %s: %v", path, err)
		}
	}
	return nil
}

func dumpFile(path string) error {
	log.Printf("decoding %s", path)

	result, err := arkparser.Load(path, nil)
	if err != nil {
		return err
	}

	switch v := result.(type) {
	case *arkparser.Profile:
		if dumpMain {
			printJSON(v.MainObject())
		}
		if dumpObjects {
			printJSON(v.Objects)
		}
	case *arkparser.Tribe:
		if dumpMain {
			printJSON(v.MainObject())
		}
		if dumpObjects {
			printJSON(v.Objects)
		}
	case *arkparser.CloudInventory:
		if dumpMain {
			printJSON(v.MainObject())
		}
		if dumpObjects {
			printJSON(v.Objects)
		}
	case *arkparser.WorldSave:
		fmt.Printf("decoded %d objects (version %d, modern=%v)\n", v.ObjectCount(), v.Version, v.IsModern)
		if dumpObjects {
			printJSON(v.Objects)
		}
		if dumpErrors {
			printJSON(v.ParseErrors)
		}
	default:
		return fmt.Errorf("unrecognized decode result for %s", path)
	}
	return nil
}

func printJSON(v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Println("marshal error:", err)
		return
	}
	fmt.Println(prettyPrint(raw))
}
