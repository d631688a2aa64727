package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-paraminfo/pkg/openapi"
	"github.com/goliatone/go-paraminfo/pkg/param"
	"github.com/goliatone/go-paraminfo/pkg/prompt"
	"github.com/goliatone/go-paraminfo/pkg/signature"
)

var strategies = map[string]param.Strategy{
	param.StrategyFastPath.String(): param.StrategyFastPath,
	param.StrategyDirect.String():   param.StrategyDirect,
	param.StrategyPooled.String():   param.StrategyPooled,
}

func newDescribeCmd(a *app) *cobra.Command {
	var (
		format   string
		strategy string
	)
	cmd := &cobra.Command{
		Use:   "describe [name]",
		Short: "Describe the parameters of a catalogued function",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projection, ok := strategies[strategy]
			if !ok {
				return fmt.Errorf("unknown strategy %q", strategy)
			}

			name := ""
			if len(args) == 1 {
				name = args[0]
			} else {
				chosen, err := a.driver.Select(cmd.Context(), prompt.SelectConfig{
					Message:  "Function:",
					Options:  a.registry.Names(),
					PageSize: 10,
				})
				if err != nil {
					return err
				}
				name = chosen
			}

			sig, err := a.registry.Describe(name)
			if err != nil {
				return err
			}
			a.logger.Debug("describing function",
				zap.String("name", sig.Name),
				zap.Int("params", len(sig.Params)),
				zap.String("format", format),
				zap.Stringer("strategy", projection),
			)
			return writeSignature(cmd.OutOrStdout(), sig, format, projection)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json, yaml, openapi")
	cmd.Flags().StringVar(&strategy, "strategy", param.StrategyFastPath.String(), "projection strategy: fast-path, direct, pooled")
	return cmd
}

func writeSignature(w io.Writer, sig signature.Signature, format string, strategy param.Strategy) error {
	var (
		out []byte
		err error
	)
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		types := param.Project(sig.Params, strategy)
		names := make([]string, len(types))
		for i, t := range types {
			names[i] = t.String()
		}
		_, err = fmt.Fprintf(w, "%s\ntypes: [%s]\n", sig.String(), strings.Join(names, ", "))
		return err
	case "json":
		out, err = signature.EncodeJSON(sig)
	case "yaml":
		out, err = signature.EncodeYAML(sig)
	case "openapi":
		doc := map[string]any{"request": openapi.RequestSchema(sig)}
		if result := openapi.ResultSchema(sig); result != nil {
			doc["response"] = result
		}
		out, err = json.MarshalIndent(doc, "", "  ")
		out = append(out, '\n')
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
