package cli

import (
	"fmt"
	"time"

	"github.com/lsoto/mantcal/internal/backup"
	"github.com/lsoto/mantcal/internal/validation"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storeReachable := false

	// Check 1: store reachable
	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Store reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Store reachable: OK\n")
		storeReachable = true
	}

	// Check 2: backups present (warning only)
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	// Check 3: duplicate ids
	if storeReachable {
		if err := checkDuplicateIDs(ctx); err != nil {
			fmt.Printf("❌ Unique ids: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Unique ids: OK\n")
		}
	} else {
		fmt.Printf("⊘ Unique ids: SKIPPED (store not reachable)\n")
	}

	// Check 4: date formats
	if storeReachable {
		if err := checkDateFormats(ctx); err != nil {
			fmt.Printf("❌ Date formats: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Date formats: OK\n")
		}
	} else {
		fmt.Printf("⊘ Date formats: SKIPPED (store not reachable)\n")
	}

	// Check 5: request links (at most one task per request)
	if storeReachable {
		if err := checkRequestLinks(ctx); err != nil {
			fmt.Printf("❌ Request links: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Request links: OK\n")
		}
	} else {
		fmt.Printf("⊘ Request links: SKIPPED (store not reachable)\n")
	}

	// Check 6: dangling machine references (warning only; they render
	// empty, the data is not broken)
	if storeReachable {
		if n := countDanglingMachineRefs(ctx); n > 0 {
			fmt.Printf("⚠ Machine references: WARNING\n")
			fmt.Printf("   %d records reference machines that no longer exist\n", n)
		} else {
			fmt.Printf("✓ Machine references: OK\n")
		}
	} else {
		fmt.Printf("⊘ Machine references: SKIPPED (store not reachable)\n")
	}

	// Check 7: session points at a real user
	if storeReachable {
		if err := checkSession(ctx); err != nil {
			fmt.Printf("⚠ Session: WARNING\n")
			fmt.Printf("   %v\n", err)
		} else {
			fmt.Printf("✓ Session: OK\n")
		}
	} else {
		fmt.Printf("⊘ Session: SKIPPED (store not reachable)\n")
	}

	// Check 8: clock/timezone sanity
	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkBackupsPresent(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.Path())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'mantcal backup create'")
	}
	return nil
}

func checkDuplicateIDs(ctx *Context) error {
	check := func(kind string, ids []int) error {
		seen := make(map[int]bool, len(ids))
		for _, id := range ids {
			if seen[id] {
				return fmt.Errorf("duplicate %s id found: %d", kind, id)
			}
			seen[id] = true
		}
		return nil
	}

	var taskIDs, machineIDs, requestIDs []int
	for _, t := range ctx.Store.Tasks() {
		taskIDs = append(taskIDs, t.ID)
	}
	for _, m := range ctx.Store.Machines() {
		machineIDs = append(machineIDs, m.ID)
	}
	for _, r := range ctx.Store.Requests() {
		requestIDs = append(requestIDs, r.ID)
	}

	if err := check("task", taskIDs); err != nil {
		return err
	}
	if err := check("machine", machineIDs); err != nil {
		return err
	}
	return check("request", requestIDs)
}

func checkDateFormats(ctx *Context) error {
	invalid := 0
	for _, t := range ctx.Store.Tasks() {
		if validation.DateTime(t.Start) != nil {
			invalid++
		}
	}
	for _, r := range ctx.Store.Requests() {
		if validation.Date(r.Date) != nil {
			invalid++
		}
	}
	for _, m := range ctx.Store.Maintenances() {
		if validation.Date(m.Date) != nil {
			invalid++
		}
	}
	if invalid > 0 {
		return fmt.Errorf("found %d records with invalid date format", invalid)
	}
	return nil
}

func checkRequestLinks(ctx *Context) error {
	linked := make(map[int]int)
	for _, t := range ctx.Store.Tasks() {
		if t.LinkedRequestID != 0 {
			linked[t.LinkedRequestID]++
		}
	}
	for reqID, n := range linked {
		if n > 1 {
			return fmt.Errorf("request %d has %d linked tasks, expected at most one", reqID, n)
		}
	}
	return nil
}

func countDanglingMachineRefs(ctx *Context) int {
	n := 0
	for _, t := range ctx.Store.Tasks() {
		if t.MachineID != 0 {
			if _, ok := ctx.Store.Machine(t.MachineID); !ok {
				n++
			}
		}
	}
	for _, r := range ctx.Store.Maintenances() {
		if _, ok := ctx.Store.Machine(r.MachineID); r.MachineID != 0 && !ok {
			n++
		}
	}
	for _, p := range ctx.Store.SpareParts() {
		if p.MachineID != 0 {
			if _, ok := ctx.Store.Machine(p.MachineID); !ok {
				n++
			}
		}
	}
	return n
}

func checkSession(ctx *Context) error {
	sess, ok := ctx.Store.Session()
	if !ok {
		return nil
	}
	if _, ok := ctx.Store.User(sess.Username); !ok {
		return fmt.Errorf("session user %q no longer exists (run 'mantcal logout')", sess.Username)
	}
	return nil
}

func checkClockTimezone() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
