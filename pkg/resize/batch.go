package resize

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/dixieflatline76/Shrink/util/log"
)

// Job is a single batch request: every image in Dir is scaled to Size.
type Job struct {
	ID   string
	Dir  string
	Size int
}

// NewJob creates a Job with a fresh ID.
func NewJob(dir string, size int) Job {
	return Job{
		ID:   uuid.NewString(),
		Dir:  dir,
		Size: size,
	}
}

// Progress is emitted before each image of a batch is resized. Current starts at 1.
type Progress struct {
	Current int
	Total   int
	Name    string
}

// Outcome summarizes a finished batch.
type Outcome struct {
	Total     int      // Images attempted
	Failed    []string // Names of images that could not be resized, in processing order
	OutputDir string
}

// Succeeded returns the number of images written to the output folder.
func (o Outcome) Succeeded() int {
	return o.Total - len(o.Failed)
}

// Reporter receives the user-facing results of a batch.
type Reporter interface {
	Status(message string)       // Replaces the current status line.
	Progress(p Progress)         // Called before each image is resized.
	Error(title, message string) // Shows an error notification.
}

// Launcher opens a folder in the native file browser.
type Launcher interface {
	Open(dir string) error
}

// Batch runs resize jobs one image at a time.
type Batch struct {
	resizer    *Resizer
	outputName string
	reporter   Reporter
	launcher   Launcher
}

// NewBatch creates a Batch writing into a folder called outputName inside each job's folder.
// launcher may be nil, in which case the output folder is not opened after a run.
func NewBatch(resizer *Resizer, outputName string, reporter Reporter, launcher Launcher) *Batch {
	return &Batch{
		resizer:    resizer,
		outputName: outputName,
		reporter:   reporter,
		launcher:   launcher,
	}
}

// Preview counts the images in dir and reports the count as status.
func (b *Batch) Preview(dir string) (int, error) {
	if dir == "" {
		b.reporter.Status(NoFolderMessage)
		return 0, ErrNoFolder
	}

	images, err := Classify(dir)
	if err != nil {
		b.reporter.Error(ErrorTitle, err.Error())
		return 0, err
	}

	b.reporter.Status(FoundMessage(len(images)))
	return len(images), nil
}

// Run resizes every image of job. Precondition failures are reported as status and
// returned before anything on disk changes. A failure on one image never stops the
// batch; failed names are collected in the Outcome instead.
func (b *Batch) Run(job Job) (Outcome, error) {
	if err := validate(job); err != nil {
		b.reporter.Status(StatusFor(err))
		return Outcome{}, err
	}

	images, err := Classify(job.Dir)
	if err != nil {
		b.reporter.Error(ErrorTitle, err.Error())
		return Outcome{}, err
	}
	if len(images) == 0 {
		b.reporter.Status(NoImagesMessage)
		return Outcome{}, ErrNoImages
	}

	out := NewOutputDir(job.Dir, b.outputName)
	if err := out.Reset(); err != nil {
		b.reporter.Error(ErrorTitle, err.Error())
		return Outcome{}, fmt.Errorf("preparing output: %w", err)
	}

	log.Printf("Batch %s: resizing %d images in %s to %d px", job.ID, len(images), job.Dir, job.Size)

	outcome := Outcome{
		Total:     len(images),
		Failed:    []string{},
		OutputDir: out.Path(),
	}
	for i, name := range images {
		b.reporter.Progress(Progress{Current: i + 1, Total: len(images), Name: name})
		if err := b.resizeOne(job, out, name); err != nil {
			log.Printf("Batch %s: failed to resize %s: %v", job.ID, name, err)
			outcome.Failed = append(outcome.Failed, name)
		}
	}

	if len(outcome.Failed) > 0 {
		b.reporter.Error(ErrorTitle, FailureMessage(outcome.Failed))
	}
	b.reporter.Status(SummaryMessage(outcome))
	log.Printf("Batch %s: %d of %d images resized", job.ID, outcome.Succeeded(), outcome.Total)

	b.launch(out.Path())
	return outcome, nil
}

func (b *Batch) resizeOne(job Job, out *OutputDir, name string) error {
	dst, err := out.FilePath(name)
	if err != nil {
		return err
	}
	return b.resizer.Resize(filepath.Join(job.Dir, name), dst, job.Size)
}

func (b *Batch) launch(dir string) {
	if b.launcher == nil {
		return
	}
	if err := b.launcher.Open(dir); err != nil {
		log.Printf("Failed to open %s: %v", dir, err)
	}
}

// validate checks the job before any file is touched. The folder check comes first.
func validate(job Job) error {
	if job.Dir == "" {
		return ErrNoFolder
	}
	if job.Size < MinSize {
		return ErrSizeTooSmall
	}
	return nil
}
