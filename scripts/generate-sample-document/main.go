package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/goliatone/go-cvgen"
	"github.com/goliatone/go-cvgen/pkg/render"
	"github.com/goliatone/go-cvgen/pkg/schema"
)

const snapshotClientName = "document-snapshot"

// snapshotClient captures the serialized document instead of rendering it,
// so the committed fixture always reflects what the pipeline produces.
type snapshotClient struct {
	path string
}

func (c *snapshotClient) Name() string { return snapshotClientName }

func (c *snapshotClient) Render(_ context.Context, doc []byte) (render.Result, error) {
	if err := os.WriteFile(c.path, doc, 0o644); err != nil {
		return render.Result{}, err
	}
	return render.Result{Success: true, Message: "snapshot written"}, nil
}

func (c *snapshotClient) HealthCheck(context.Context) bool { return true }

func main() {
	outputPath := flag.String("output", "examples/fixtures/sample_cv.yaml", "output path for the serialized document")
	flag.Parse()

	gen := cvgen.NewOrchestrator(
		cvgen.WithClients(&snapshotClient{path: *outputPath}),
		cvgen.WithDefaultClient(snapshotClientName),
	)

	if _, err := gen.Generate(context.Background(), cvgen.Request{Session: sampleSession()}); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate document: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Document written to %s\n", *outputPath)
}

func sampleSession() *cvgen.Session {
	s := cvgen.NewSession()
	s.SetIdentity("name", "Alex Rivera")
	s.SetIdentity("headline", "Staff Software Engineer")
	s.SetIdentity("location", "Barcelona, Spain")
	s.SetIdentity("email", "alex@example.com")
	s.SetIdentity("phone", "+34 600 123 456")
	s.SetIdentity("website", "https://alexrivera.dev")
	s.CV.SocialNetworks = append(s.CV.SocialNetworks,
		cvgen.SocialNetwork{Network: "GitHub", Username: "arivera"},
		cvgen.SocialNetwork{Network: "LinkedIn", Username: "alex-rivera"},
	)

	summary := s.AddEntry("summary", schema.KindText)
	s.SetField(summary, "text", "Engineer with twelve years building data platforms and leading small teams.")

	exp := s.AddEntry("experience", schema.KindExperience)
	s.SetField(exp, "company", "Vector Labs")
	s.SetField(exp, "position", "Staff Engineer")
	s.SetField(exp, "start_date", "2019-05")
	s.SetField(exp, "end_date", "present")
	s.SetField(exp, "location", "Barcelona, Spain")
	s.SetListField(exp, "highlights", "Scaled event ingest to 2M events per second\nLed a team of six across two time zones")

	prev := s.AddEntry("experience", schema.KindExperience)
	s.SetField(prev, "company", "Datawave")
	s.SetField(prev, "position", "Senior Engineer")
	s.SetField(prev, "start_date", "2014-02")
	s.SetField(prev, "end_date", "2019-04")
	s.SetField(prev, "location", "Madrid, Spain")

	edu := s.AddEntry("education", schema.KindEducation)
	s.SetField(edu, "institution", "Universitat Politecnica de Catalunya")
	s.SetField(edu, "area", "Computer Science")
	s.SetField(edu, "degree", "BSc")
	s.SetField(edu, "start_date", "2008-09")
	s.SetField(edu, "end_date", "2012-06")

	pub := s.AddEntry("publications", schema.KindPublication)
	s.SetField(pub, "title", "Backpressure Strategies for Streaming Pipelines")
	s.SetListField(pub, "authors", "Alex Rivera\nM. Chen")
	s.SetField(pub, "journal", "Queueing Systems Review")
	s.SetField(pub, "date", "2021-11")

	proj := s.AddEntry("projects", schema.KindNormal)
	s.SetField(proj, "name", "tapekeeper")
	s.SetField(proj, "summary", "Open source append-only storage engine.")

	skills := s.AddEntry("skills", schema.KindOneLine)
	s.SetField(skills, "label", "Languages")
	s.SetField(skills, "details", "Go, Rust, SQL")

	s.Design = cvgen.Design{Theme: "classic", Color: "blue"}
	return s
}
