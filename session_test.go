package menuscript

import (
	"testing"
)

func TestSessionClearPreservesLanguage(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSession(cfg)
	s.SetLanguage("en")
	s.DefineStyle(&Style{Name: "x"})
	s.Clear(cfg)

	if s.Language() != "en" {
		t.Errorf("language = %q after clear", s.Language())
	}
	if _, ok := s.StyleByName("x"); ok {
		t.Error("style survived clear")
	}
	if s.Main().Configured {
		t.Error("main window configured after clear")
	}
	if s.Main().Width != cfg.DefaultWindowW {
		t.Errorf("main width = %d", s.Main().Width)
	}
}

func TestSessionControlMoveBetweenPopups(t *testing.T) {
	s := NewSession(DefaultConfig())
	s.DefinePopup(&Popup{ID: "p1"})
	s.DefinePopup(&Popup{ID: "p2"})

	s.DefineControl(&Control{Name: "c", Type: "label", Container: "p1"})
	p1, _ := s.PopupByID("p1")
	if !containsName(p1.Controls, "c") {
		t.Fatal("control not tracked on p1")
	}

	// Redefining under another popup moves ownership
	s.DefineControl(&Control{Name: "c", Type: "label", Container: "p2"})
	p2, _ := s.PopupByID("p2")
	if containsName(p1.Controls, "c") {
		t.Error("stale ownership on p1")
	}
	if !containsName(p2.Controls, "c") {
		t.Error("control not tracked on p2")
	}

	// Closing p1 must not take the moved control with it
	s.RemovePopup("p1")
	if _, ok := s.ControlByName("c"); !ok {
		t.Error("control lost with the wrong popup")
	}
}

func TestSessionRemovePopupCascades(t *testing.T) {
	s := NewSession(DefaultConfig())
	s.DefinePopup(&Popup{ID: "p"})
	s.DefineControl(&Control{Name: "a", Type: "label", Container: "p"})
	s.DefineControl(&Control{Name: "b", Type: "button", Container: "p"})
	s.DefineControl(&Control{Name: "outside", Type: "label"})
	s.SetBinding(&Binding{Key: BindingKey{Control: "b", Event: EventClick}})
	s.SetBinding(&Binding{Key: BindingKey{Control: "outside", Event: EventClick}})

	removed, ok := s.RemovePopup("p")
	if !ok || len(removed) != 2 {
		t.Fatalf("removed = %v, ok = %v", removed, ok)
	}
	if _, ok := s.ControlByName("a"); ok {
		t.Error("popup control a survived")
	}
	if _, ok := s.BindingFor(BindingKey{Control: "b", Event: EventClick}); ok {
		t.Error("binding on popup control survived")
	}
	if _, ok := s.ControlByName("outside"); !ok {
		t.Error("unrelated control removed")
	}
	if _, ok := s.BindingFor(BindingKey{Control: "outside", Event: EventClick}); !ok {
		t.Error("unrelated binding removed")
	}

	if _, ok := s.RemovePopup("p"); ok {
		t.Error("second remove reported a popup")
	}
}

func TestSessionPopupOrder(t *testing.T) {
	s := NewSession(DefaultConfig())
	s.DefinePopup(&Popup{ID: "first"})
	s.DefinePopup(&Popup{ID: "second"})
	s.DefinePopup(&Popup{ID: "third"})
	s.RemovePopup("second")

	list := s.PopupList()
	if len(list) != 2 || list[0].ID != "first" || list[1].ID != "third" {
		t.Errorf("popup list = %+v", list)
	}
}

func TestSessionStyleResolution(t *testing.T) {
	s := NewSession(DefaultConfig())
	if st := s.ResolveStyle("late"); st.Background != "" {
		t.Errorf("undefined class resolved to %+v", st)
	}
	s.DefineStyle(&Style{Name: "late", Background: "#000"})
	if st := s.ResolveStyle("late"); st.Background != "#000" {
		t.Errorf("late definition not picked up: %+v", st)
	}
}

func TestSessionGridPerContainer(t *testing.T) {
	s := NewSession(DefaultConfig())
	s.DefineGrid(&GridSpec{Owner: "", Rows: 2, Cols: 2})
	s.DefineGrid(&GridSpec{Owner: "p1", Rows: 4, Cols: 1})

	g, ok := s.GridFor("")
	if !ok || g.Rows != 2 {
		t.Errorf("main grid = %+v", g)
	}
	g, ok = s.GridFor("p1")
	if !ok || g.Rows != 4 {
		t.Errorf("popup grid = %+v", g)
	}
	if _, ok := s.GridFor("p2"); ok {
		t.Error("grid reported for container without one")
	}
}
