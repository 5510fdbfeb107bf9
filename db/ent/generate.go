package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/lewisallan/titan-jobs/gen/ent",
			Schema:  "github.com/lewisallan/titan-jobs/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatalf("running ent codegen: %v", err)
	}
}
