package commands

import (
	"fmt"
	"net/http"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	jsoniter "github.com/json-iterator/go"
	"github.com/rodaine/table"
	"github.com/simplecontainer/apimethod/pkg/client"
	"github.com/simplecontainer/apimethod/pkg/contracts/iresponse"
	"github.com/simplecontainer/apimethod/pkg/network"
	"golang.org/x/term"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func PrintResponse(cli *client.Client, response *iresponse.Response[any]) error {
	status := fmt.Sprintf("%d %s", response.StatusCode, http.StatusText(response.StatusCode))

	if response.Failed() {
		color.New(color.FgRed).Fprintln(cli.Err, status)
	} else {
		color.New(color.FgGreen).Fprintln(cli.Err, status)
	}

	var output []byte
	var err error

	if interactive(cli) {
		output, err = json.MarshalIndent(response, "", "  ")
	} else {
		output, err = json.Marshal(response)
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cli.Out, string(output))
	return err
}

func PrintDescriptor(cli *client.Client, descriptor network.Descriptor, body network.Body) {
	fmt.Fprintf(cli.Out, "%s %s\n", descriptor.Method, descriptor.URL)

	header := descriptor.Header()
	names := make([]string, 0, len(header))

	for name := range header {
		names = append(names, name)
	}

	sort.Strings(names)

	tbl := table.New("HEADER", "VALUE").WithWriter(cli.Out)

	for _, name := range names {
		tbl.AddRow(name, strings.Join(header.Values(name), ", "))
	}

	tbl.Print()

	if descriptor.SendsBody(body) {
		fmt.Fprintln(cli.Out, "body: sent")
	} else {
		fmt.Fprintln(cli.Out, "body: omitted")
	}

	if descriptor.Cache.Reusable() && descriptor.Method.Cacheable() {
		fmt.Fprintf(cli.Out, "cache: reusable for %s\n", descriptor.Cache.Revalidate)
	} else {
		fmt.Fprintln(cli.Out, "cache: none")
	}
}

func PrintMetrics(cli *client.Client) error {
	families, err := cli.Registry.Gather()

	if err != nil {
		return err
	}

	tbl := table.New("METRIC", "LABELS", "VALUE").WithWriter(cli.Err)

	for _, family := range families {
		for _, metric := range family.GetMetric() {
			labels := make([]string, 0, len(metric.GetLabel()))

			for _, label := range metric.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%s", label.GetName(), label.GetValue()))
			}

			value := metric.GetCounter().GetValue()

			if histogram := metric.GetHistogram(); histogram != nil {
				value = histogram.GetSampleSum()
			}

			tbl.AddRow(family.GetName(), strings.Join(labels, ","), value)
		}
	}

	tbl.Print()

	return nil
}

func interactive(cli *client.Client) bool {
	file, ok := cli.Out.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
