package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-catalog-admin/internal/adapter"
	"github.com/MKhiriev/go-catalog-admin/models"
)

const usage = `Commands:
  login <email> <password>            print a session token
  version                             print server and client build info
  list <collection>                   list records
  get <collection> <id>               show one record
  create <collection> <json>          create a record
  update <collection> <id> <json>     update fields of a record
  delete <collection> <id>            delete a record

Collections: categories, products, users.
`

var errUsage = errors.New("invalid usage, run with -h for help")

type commandLine struct {
	catalog adapter.CatalogAdapter
	out     io.Writer
}

func newCommandLine(catalog adapter.CatalogAdapter, out io.Writer) *commandLine {
	return &commandLine{catalog: catalog, out: out}
}

func (c *commandLine) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	command, args := args[0], args[1:]
	switch command {
	case "login":
		if len(args) != 2 {
			return errUsage
		}
		session, err := c.catalog.Login(ctx, models.Credentials{Identifier: args[0], Secret: args[1]})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(c.out, session.Token)
		return err

	case "version":
		if len(args) != 0 {
			return errUsage
		}
		info, err := c.catalog.Version(ctx)
		if err != nil {
			return err
		}
		return c.print(map[string]models.AppBuildInfo{
			"server": info,
			"client": models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
		})

	case "list":
		if len(args) != 1 {
			return errUsage
		}
		records, err := c.catalog.List(ctx, args[0])
		if err != nil {
			return err
		}
		return c.print(records)

	case "get":
		if len(args) != 2 {
			return errUsage
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		record, err := c.catalog.Get(ctx, args[0], id)
		if err != nil {
			return err
		}
		return c.print(record)

	case "create":
		if len(args) != 2 {
			return errUsage
		}
		payload, err := parsePayload(args[1])
		if err != nil {
			return err
		}
		record, err := c.catalog.Create(ctx, args[0], payload)
		if err != nil {
			return err
		}
		return c.print(record)

	case "update":
		if len(args) != 3 {
			return errUsage
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		payload, err := parsePayload(args[2])
		if err != nil {
			return err
		}
		record, err := c.catalog.Update(ctx, args[0], id, payload)
		if err != nil {
			return err
		}
		return c.print(record)

	case "delete":
		if len(args) != 2 {
			return errUsage
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		return c.catalog.Delete(ctx, args[0], id)

	default:
		return fmt.Errorf("unknown command %q: %w", command, errUsage)
	}
}

func (c *commandLine) print(v any) error {
	encoder := json.NewEncoder(c.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id must be a positive integer, got %q", raw)
	}
	return id, nil
}

// parsePayload decodes a JSON object argument keeping numbers exact.
func parsePayload(raw string) (map[string]any, error) {
	decoder := json.NewDecoder(strings.NewReader(raw))
	decoder.UseNumber()

	var payload map[string]any
	if err := decoder.Decode(&payload); err != nil || payload == nil {
		return nil, fmt.Errorf("payload must be a JSON object: %q", raw)
	}
	return payload, nil
}
