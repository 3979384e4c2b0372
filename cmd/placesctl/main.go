// Command placesctl sends one autocomplete request over the NATS channel and
// prints the predictions.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"

	natsadapter "github.com/samirrijal/placesbridge/internal/adapters/nats"
	"github.com/samirrijal/placesbridge/internal/core/domain"
	"github.com/samirrijal/placesbridge/internal/core/messages"
	"github.com/samirrijal/placesbridge/internal/pkg/config"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "placesctl:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load("placesctl")
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	fs := pflag.NewFlagSet("placesctl", pflag.ContinueOnError)
	natsURL := fs.String("nats-url", cfg.NATS.URL, "NATS server URL")
	subject := fs.String("subject", cfg.NATS.Subject, "request subject")
	useProto := fs.Bool("proto", false, "use the protobuf list codec")
	countries := fs.StringSlice("country", nil, "restrict to country code (repeatable)")
	filter := fs.String("filter", "", "type filter: address, cities, establishment, geocode or regions")
	origin := fs.Float64Slice("origin", nil, "origin as lat,lng")
	refresh := fs.Bool("refresh", false, "start a new session")
	asJSON := fs.Bool("json", false, "print the raw reply as JSON")
	timeout := fs.Duration("timeout", 5*time.Second, "request timeout")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: placesctl [flags] <query>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("missing query")
	}

	req := messages.FindAutocompletePredictionsRequest{
		Query:        strings.Join(fs.Args(), " "),
		RefreshToken: refresh,
	}
	for _, c := range *countries {
		req.Countries = append(req.Countries, messages.String(c))
	}
	if *filter != "" {
		code, err := filterCode(*filter)
		if err != nil {
			return err
		}
		req.TypeFilter = []*int64{messages.Int64(code)}
	}
	if len(*origin) > 0 {
		if len(*origin) != 2 {
			return fmt.Errorf("--origin wants lat,lng")
		}
		req.Origin = messages.Point((*origin)[0], (*origin)[1])
	}

	conn, err := natsadapter.Connect(*natsURL, "placesctl")
	if err != nil {
		return fmt.Errorf("nats: %w", err)
	}
	defer conn.Close()

	var codec natsadapter.Codec = natsadapter.JSONCodec{}
	if *useProto {
		codec = natsadapter.ListCodec{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	reply, err := natsadapter.Request(ctx, conn, *subject, codec, req)
	if err != nil {
		return err
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(reply)
	}
	if reply.Error != nil {
		return fmt.Errorf("%s: %s", reply.Error.Code, reply.Error.Message)
	}
	printPredictions(reply.Result)
	return nil
}

func filterCode(name string) (int64, error) {
	for _, f := range domain.TypeFilters() {
		if strings.EqualFold(f.Name(), name) {
			return int64(f), nil
		}
	}
	return 0, fmt.Errorf("unknown filter %q", name)
}

func printPredictions(preds []*messages.AutocompletePrediction) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PLACE ID\tPRIMARY\tSECONDARY\tDISTANCE\tTYPES")
	for _, p := range preds {
		if p == nil {
			continue
		}
		dist := "-"
		if p.DistanceMeters != nil {
			dist = fmt.Sprintf("%dm", *p.DistanceMeters)
		}
		types := make([]string, 0, len(p.PlaceTypes))
		for _, t := range p.PlaceTypes {
			if t != nil {
				types = append(types, domain.PlaceType(*t).Native())
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.PlaceID, p.PrimaryText, p.SecondaryText, dist, strings.Join(types, ","))
	}
	tw.Flush()
}
