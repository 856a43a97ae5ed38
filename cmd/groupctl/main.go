/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// groupctl is the administrative tool for groups: they are never created or removed
// through the posting UI, only here.
//
//	groupctl -config config.yaml create -title "Музыка" -slug music -description "..."
//	groupctl -config config.yaml delete -slug music
//	groupctl -config config.yaml list
package main

import (
	"flag"
	"fmt"
	"os"

	"yatube/internal/app"
	"yatube/internal/config"
	"yatube/internal/entity"
	"yatube/internal/repository"
)

func main() {
	configPath := flag.String("config", "", "path to the yaml config (env-only when empty)")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: groupctl [-config file] create|delete|list [flags]")
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger := app.NewLogger(cfg.Log)

	db, err := repository.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		logger.Error("opening database", "error", err)
		os.Exit(1)
	}
	groups := repository.NewGormGroupRepository(db)

	switch flag.Arg(0) {
	case "create":
		fs := flag.NewFlagSet("create", flag.ExitOnError)
		title := fs.String("title", "", "display name, at most 80 characters")
		slug := fs.String("slug", "", "unique URL-safe identifier")
		description := fs.String("description", "", "free-text description")
		fs.Parse(flag.Args()[1:])

		if *title == "" || *slug == "" || *description == "" {
			fmt.Fprintln(os.Stderr, "create requires -title, -slug and -description")
			os.Exit(2)
		}
		group := &entity.Group{Title: *title, Slug: *slug, Description: *description}
		if err := groups.Create(group); err != nil {
			logger.Error("creating group", "slug", *slug, "error", err)
			os.Exit(1)
		}
		fmt.Printf("created group %d (%s)\n", group.ID, group.Slug)

	case "delete":
		fs := flag.NewFlagSet("delete", flag.ExitOnError)
		slug := fs.String("slug", "", "slug of the group to delete")
		fs.Parse(flag.Args()[1:])

		group, err := groups.GetBySlug(*slug)
		if err != nil {
			logger.Error("resolving group", "slug", *slug, "error", err)
			os.Exit(1)
		}
		// Posts survive the group: only their group reference is cleared.
		if err := groups.DeleteNullifying(group.ID); err != nil {
			logger.Error("deleting group", "slug", *slug, "error", err)
			os.Exit(1)
		}
		fmt.Printf("deleted group %s, its posts kept\n", group.Slug)

	case "list":
		all, err := groups.GetAll()
		if err != nil {
			logger.Error("listing groups", "error", err)
			os.Exit(1)
		}
		for _, g := range all {
			fmt.Printf("%d\t%s\t%s\n", g.ID, g.Slug, g.Title)
		}

	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", flag.Arg(0))
		os.Exit(2)
	}
}
