package material

import "testing"

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "click", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "tap", "x": 5, "y": 6},
			{"action": "press", "x": 1, "y": 2, "touch": true}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "click" || runner.steps[1].X != 100 || runner.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Action != "wait" || runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
	if !runner.steps[4].Touch || runner.steps[1].Touch {
		t.Error("touch flag mismatch")
	}
}

func TestLoadTestScript_Invalid(t *testing.T) {
	_, err := LoadTestScript([]byte(`not json`))
	if err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadTestScript_Empty(t *testing.T) {
	_, err := LoadTestScript([]byte(`{"steps": []}`))
	if err == nil {
		t.Error("expected error for empty steps")
	}
}

func TestRunnerStep_Click(t *testing.T) {
	s, back, _ := newInputScene()
	clicks := 0
	back.OnClick = func(*Surface) { clicks++ }

	data := []byte(`{"steps": [{"action": "click", "x": 150, "y": 150}]}`)
	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)

	// First step call: click queues press and release.
	runner.step(s)
	if s.PendingInjections() != 2 {
		t.Fatalf("expected 2 queued events, got %d", s.PendingInjections())
	}
	if runner.Done() {
		t.Error("runner should not be done while inject queue has events")
	}

	s.processInput()
	s.processInput()
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}

	runner.step(s)
	if !runner.Done() {
		t.Error("runner should be done after all steps executed and queue drained")
	}
}

func TestRunnerStep_TouchPress(t *testing.T) {
	s, back, _ := newInputScene()

	data := []byte(`{"steps": [{"action": "press", "x": 150, "y": 150, "touch": true}]}`)
	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatal(err)
	}

	runner.step(s)
	if s.injectQueue[0].device != DeviceTouch {
		t.Errorf("device = %v, want touch", s.injectQueue[0].device)
	}
	s.processInput()
	if back.State() != StatePressed {
		t.Errorf("state = %v, want pressed", back.State())
	}
	if back.interaction.Device() != DeviceTouch {
		t.Error("press not recorded as touch")
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	s := NewScene()

	data := []byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "screenshot", "label": "done"}
	]}`)
	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatal(err)
	}

	// Frame 1: execute wait (waitCount becomes 2).
	runner.step(s)
	if runner.Done() {
		t.Error("should not be done during wait")
	}

	// Frames 2 and 3: count down.
	runner.step(s)
	runner.step(s)
	if runner.Done() {
		t.Error("should not be done before the screenshot step")
	}

	// Frame 4: execute screenshot step, runner finishes.
	runner.step(s)
	if !runner.Done() {
		t.Error("runner should be done after screenshot step")
	}
	if len(s.screenshotQueue) != 1 || s.screenshotQueue[0] != "done" {
		t.Errorf("expected screenshot 'done', got %v", s.screenshotQueue)
	}
}

func TestRunnerStep_Drag(t *testing.T) {
	s := NewScene()

	data := []byte(`{"steps": [{"action": "drag", "fromX": 10, "fromY": 10, "toX": 200, "toY": 200, "frames": 4}]}`)
	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatal(err)
	}

	runner.step(s)
	if s.PendingInjections() != 4 {
		t.Fatalf("expected 4 queued events for drag, got %d", s.PendingInjections())
	}
}

func TestRunnerStep_UnknownAction(t *testing.T) {
	s := NewScene()
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "teleport"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	runner.step(s)
	if !runner.Done() {
		t.Error("unknown action should be skipped")
	}
	if s.PendingInjections() != 0 || len(s.screenshotQueue) != 0 {
		t.Error("unknown action queued work")
	}
}

func TestRunnerWaitsForInjectQueue(t *testing.T) {
	s := NewScene()

	data := []byte(`{"steps": [
		{"action": "click", "x": 50, "y": 50},
		{"action": "screenshot", "label": "after"}
	]}`)
	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatal(err)
	}

	runner.step(s)
	runner.step(s)
	if runner.cursor != 1 {
		t.Errorf("cursor should still be 1, got %d", runner.cursor)
	}

	s.injectQueue = s.injectQueue[:0]

	runner.step(s)
	if len(s.screenshotQueue) != 1 || s.screenshotQueue[0] != "after" {
		t.Errorf("expected screenshot 'after', got %v", s.screenshotQueue)
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
}
