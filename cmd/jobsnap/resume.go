package main

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/fwojciec/jobsnap"
)

// Run executes the resume add command. The new resume becomes current.
func (c *ResumeAddCmd) Run(deps *Dependencies) error {
	content, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	// Unknown extensions leave the type empty for storage to sniff.
	fileType := mime.TypeByExtension(filepath.Ext(c.File))
	if mt, _, err := mime.ParseMediaType(fileType); err == nil {
		fileType = mt
	}

	resume := &jobsnap.Resume{
		FileName: filepath.Base(c.File),
		FileType: fileType,
		Content:  content,
	}
	if err := deps.Resumes.CreateResume(deps.Ctx, resume); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobsnap.ErrorMessage(err))
		return err
	}
	if err := deps.Resumes.SetCurrentResume(deps.Ctx, resume.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobsnap.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added resume %q (%s)\n", resume.FileName, resume.ID)
	return nil
}

// Run executes the resume list command. The current resume is starred.
func (c *ResumeListCmd) Run(deps *Dependencies) error {
	resumes, err := deps.Resumes.FindResumes(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobsnap.ErrorMessage(err))
		return err
	}

	if len(resumes) == 0 {
		fmt.Fprintln(deps.Stdout, "No resumes uploaded. Use 'jobsnap resume add' to add one.")
		return nil
	}

	var currentID string
	current, err := deps.Resumes.CurrentResume(deps.Ctx)
	switch {
	case err == nil:
		currentID = current.ID
	case jobsnap.ErrorCode(err) != jobsnap.ENOTFOUND:
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobsnap.ErrorMessage(err))
		return err
	}

	for _, r := range resumes {
		marker := " "
		if r.ID == currentID {
			marker = "*"
		}
		fmt.Fprintf(deps.Stdout, "%s %s  %s  %s  %d KB\n",
			marker, r.ID, r.FileName, r.FileType, (r.FileSize+1023)/1024)
	}
	return nil
}

// Run executes the resume use command.
func (c *ResumeUseCmd) Run(deps *Dependencies) error {
	if err := deps.Resumes.SetCurrentResume(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobsnap.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Using resume %s\n", c.ID)
	return nil
}
