package form

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/hris-console-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type designationDraft struct {
	Name       string `json:"name"`
	Department string `json:"department"`
}

func (d designationDraft) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(d.Name) {
		errs.Add("name", "name is required")
	}
	if validator.IsEmpty(d.Department) {
		errs.Add("department", "department is required")
	}
	return errs.Err()
}

type recorder struct {
	saves     []string
	refreshes int
	saveErr   error
}

func (r *recorder) save(ctx context.Context, id string, d designationDraft) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves = append(r.saves, id+":"+d.Name)
	return nil
}

func (r *recorder) refresh(ctx context.Context) error {
	r.refreshes++
	return nil
}

func TestController_CreateSubmitRefreshesAndCloses(t *testing.T) {
	c := NewController[designationDraft](nil)
	rec := &recorder{}

	snap := c.New()
	assert.Equal(t, ModeCreate, snap.Mode)

	_, err := c.Update(designationDraft{Name: "Engineer", Department: "Technology"})
	require.NoError(t, err)

	saved, err := c.Submit(context.Background(), rec.save, rec.refresh)
	require.NoError(t, err)

	assert.Equal(t, "Engineer", saved.Name)
	assert.Equal(t, []string{":Engineer"}, rec.saves)
	assert.Equal(t, 1, rec.refreshes)
	assert.Equal(t, ModeClosed, c.Current().Mode)
}

func TestController_ValidationBlocksBackendCall(t *testing.T) {
	c := NewController[designationDraft](nil)
	rec := &recorder{}

	c.New()
	_, err := c.Update(designationDraft{Name: "  "})
	require.NoError(t, err)

	_, err = c.Submit(context.Background(), rec.save, rec.refresh)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
	assert.Empty(t, rec.saves, "invalid drafts never reach the backend")
	assert.Zero(t, rec.refreshes)
	assert.Equal(t, ModeCreate, c.Current().Mode, "draft is kept for correction")
}

func TestController_SaveFailureKeepsDraft(t *testing.T) {
	c := NewController[designationDraft](nil)
	rec := &recorder{saveErr: errors.New("conflict")}

	c.Edit("42", designationDraft{Name: "Engineer", Department: "Technology"})

	_, err := c.Submit(context.Background(), rec.save, rec.refresh)
	require.Error(t, err)

	snap := c.Current()
	assert.Equal(t, ModeEdit, snap.Mode)
	assert.Equal(t, "42", snap.ID)
	assert.Equal(t, "Engineer", snap.Draft.Name)
	assert.False(t, snap.Submitting)
	assert.Zero(t, rec.refreshes)
}

func TestController_EditPassesID(t *testing.T) {
	c := NewController[designationDraft](nil)
	rec := &recorder{}

	c.Edit("42", designationDraft{Name: "Engineer", Department: "Technology"})
	id, err := c.EditingID()
	require.NoError(t, err)
	assert.Equal(t, "42", id)

	_, err = c.Submit(context.Background(), rec.save, rec.refresh)
	require.NoError(t, err)
	assert.Equal(t, []string{"42:Engineer"}, rec.saves)

	_, err = c.EditingID()
	assert.ErrorIs(t, err, ErrNotEditing)
}

func TestController_CancelDiscardsDraft(t *testing.T) {
	c := NewController(func() designationDraft { return designationDraft{Department: "Technology"} })

	snap := c.New()
	assert.Equal(t, "Technology", snap.Draft.Department, "blank builder seeds defaults")

	c.Cancel()

	_, err := c.Update(designationDraft{Name: "x"})
	assert.ErrorIs(t, err, ErrNoDraft)
	_, err = c.Submit(context.Background(), (&recorder{}).save, nil)
	assert.ErrorIs(t, err, ErrNoDraft)
}

func TestController_RefreshFailureIsReported(t *testing.T) {
	c := NewController[designationDraft](nil)
	c.New()
	_, _ = c.Update(designationDraft{Name: "Engineer", Department: "Technology"})

	boom := errors.New("backend down")
	_, err := c.Submit(context.Background(), (&recorder{}).save, func(ctx context.Context) error { return boom })

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, ModeClosed, c.Current().Mode, "the save itself succeeded")
}

func TestController_RejectsConcurrentSubmit(t *testing.T) {
	c := NewController[designationDraft](nil)
	c.New()
	_, _ = c.Update(designationDraft{Name: "Engineer", Department: "Technology"})

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		_, err := c.Submit(context.Background(), func(ctx context.Context, id string, d designationDraft) error {
			close(started)
			<-release
			return nil
		}, nil)
		done <- err
	}()

	<-started
	_, err := c.Submit(context.Background(), (&recorder{}).save, nil)
	assert.ErrorIs(t, err, ErrSubmitInProgress)
	assert.True(t, c.Current().Submitting)

	close(release)
	require.NoError(t, <-done)
}

func TestController_FormOpenedDuringSaveSurvives(t *testing.T) {
	c := NewController[designationDraft](nil)
	rec := &recorder{}

	c.New()
	_, err := c.Update(designationDraft{Name: "Engineer", Department: "Technology"})
	require.NoError(t, err)

	save := func(ctx context.Context, id string, d designationDraft) error {
		c.Edit("d2", designationDraft{Name: "Analyst", Department: "Finance"})
		return rec.save(ctx, id, d)
	}
	_, err = c.Submit(context.Background(), save, rec.refresh)
	require.NoError(t, err)

	snap := c.Current()
	assert.Equal(t, ModeEdit, snap.Mode)
	assert.Equal(t, "d2", snap.ID)
	assert.Equal(t, "Analyst", snap.Draft.Name)
	assert.False(t, snap.Submitting)
	assert.Equal(t, 1, rec.refreshes)
}
