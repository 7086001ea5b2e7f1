package identicon

import (
	"bufio"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/bodgit/identicon/manifest"
)

const numWorkers = 10

type render struct {
	digest   string
	filename string
}

func (g *Generator) readInputs(ctx context.Context, file string) (<-chan string, <-chan error, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, nil, err
	}

	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		defer f.Close()

		s := bufio.NewScanner(f)
		for s.Scan() {
			// Blank lines would hash fine but are far more likely
			// stray whitespace than a wanted identicon
			line := s.Text()
			if line == "" {
				continue
			}

			select {
			case out <- line:
			case <-ctx.Done():
				errc <- errors.New("batch cancelled")
				return
			}
		}
		errc <- s.Err()
	}()
	return out, errc, nil
}

func (g *Generator) renderWorker(ctx context.Context, dir string, f Format, in <-chan string, out chan<- render, wg *sync.WaitGroup) (<-chan error, error) {
	errc := make(chan error, 1)
	wg.Add(1)
	go func() {
		defer close(errc)
		defer wg.Done()
		for input := range in {
			b, err := g.Render(input, f)
			if err != nil {
				errc <- err
				return
			}

			name := Filename(input, f)
			if err := os.WriteFile(filepath.Join(dir, name), b, 0644); err != nil {
				errc <- err
				return
			}
			g.logger.Printf("wrote \"%s\" for input \"%s\"\n", name, input)

			select {
			case out <- render{digest: digestHex(hashInput(input)), filename: name}:
			case <-ctx.Done():
				errc <- errors.New("batch cancelled")
				return
			}
		}
	}()
	return errc, nil
}

func (g *Generator) writeManifest(dir string, in <-chan render) <-chan error {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)

		db := manifest.New()
		for r := range in {
			db.Set(r.digest, r.filename)
		}

		if db.Length() == 0 {
			return
		}

		b, err := db.MarshalText()
		if err != nil {
			errc <- err
			return
		}

		if err := os.WriteFile(filepath.Join(dir, manifest.Filename), b, 0644); err != nil {
			errc <- err
		}
	}()
	return errc
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Batch renders an identicon for every non-empty line of file into the
// directory dir, fanning the inputs out over a fixed pool of workers.
// Each pipeline run is independent so the runs are safe to execute
// concurrently. A manifest mapping each digest to its written filename is
// left alongside the images.
func (g *Generator) Batch(file, dir string, f Format) error {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	inputs, errc, err := g.readInputs(ctx, file)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	renders := make(chan render)

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		errc, err := g.renderWorker(ctx, dir, f, inputs, renders, &wg)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}
	go func() {
		wg.Wait()
		close(renders)
	}()

	errcList = append(errcList, g.writeManifest(dir, renders))

	return waitForPipeline(errcList...)
}
