package engine

import (
	"fmt"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/vellum-cad/vellum/pkg/boolean"
	"github.com/vellum-cad/vellum/pkg/entity"
	"github.com/vellum-cad/vellum/pkg/geom"
	"github.com/vellum-cad/vellum/pkg/modify"
	"github.com/vellum-cad/vellum/pkg/store"
)

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpPoint wraps a geom.Point so it can be passed between builtins.
type sexpPoint struct {
	p geom.Point
}

func (p *sexpPoint) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(pt %.4g %.4g)", p.p.X, p.p.Y)
}
func (p *sexpPoint) Type() *zygo.RegisteredType { return nil }

// sexpEntityRef wraps an entity.ID so scripts can refer back to
// entities they created.
type sexpEntityRef struct {
	id   entity.ID
	kind entity.Kind
}

func (r *sexpEntityRef) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(entity %s %s)", r.kind, r.id.Short())
}
func (r *sexpEntityRef) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
// Keywords are identified by the __kw_ prefix added during preprocessing.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				// Keyword at end with no value, treat as flag with nil.
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toBool extracts a bool from a Sexp. The bare-keyword flag form
// (":trim" with no value) reads as true.
func toBool(s zygo.Sexp) (bool, error) {
	switch v := s.(type) {
	case *zygo.SexpBool:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return true, nil
		}
	}
	return false, fmt.Errorf("expected bool, got %T (%s)", s, s.SexpString(nil))
}

// toPoint extracts a geom.Point from a sexpPoint.
func toPoint(s zygo.Sexp) (geom.Point, error) {
	if p, ok := s.(*sexpPoint); ok {
		return p.p, nil
	}
	return geom.Point{}, fmt.Errorf("expected point, got %T (%s)", s, s.SexpString(nil))
}

// toEntityRef extracts an entity.ID from a sexpEntityRef.
func toEntityRef(s zygo.Sexp) (entity.ID, error) {
	if r, ok := s.(*sexpEntityRef); ok {
		return r.id, nil
	}
	return "", fmt.Errorf("expected entity reference, got %T (%s)", s, s.SexpString(nil))
}

// sexpListToSlice converts a SexpPair (Lisp list) or SexpArray to a Go slice.
func sexpListToSlice(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("expected list or array, got %T", s)
}

// toPoints converts a list of point sexps to a []geom.Point.
func toPoints(s zygo.Sexp) ([]geom.Point, error) {
	items, err := sexpListToSlice(s)
	if err != nil {
		return nil, err
	}
	pts := make([]geom.Point, 0, len(items))
	for i, item := range items {
		p, err := toPoint(item)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		pts = append(pts, p)
	}
	return pts, nil
}

// kwFloat reads an optional numeric keyword into dst.
func kwFloat(pa kwArgs, name, fn string, dst *float64) error {
	v, ok := pa.kw[name]
	if !ok {
		return nil
	}
	f, err := toFloat64(v)
	if err != nil {
		return fmt.Errorf("%s: %s: %w", fn, name, err)
	}
	*dst = f
	return nil
}

// kwPoint reads an optional point keyword into dst.
func kwPoint(pa kwArgs, name, fn string, dst *geom.Point) error {
	v, ok := pa.kw[name]
	if !ok {
		return nil
	}
	p, err := toPoint(v)
	if err != nil {
		return fmt.Errorf("%s: %s: %w", fn, name, err)
	}
	*dst = p
	return nil
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs all Vellum DSL builtins into a zygomys
// environment. The builtins operate on the provided store, populating it
// during evaluation.
//
// Source code must be preprocessed with preprocessSource() before evaluation
// so that :keyword tokens are converted to recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, st *store.Store) {

	// addEntity applies the shared :layer, :stroke and :stroke-width
	// keywords, stores the entity and returns a reference.
	addEntity := func(fn string, pa kwArgs, data entity.Data) (zygo.Sexp, error) {
		e := entity.Entity{Visible: true, Style: entity.DefaultStyle, Data: data}
		if v, ok := pa.kw["layer"]; ok {
			s, err := toString(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: layer: %w", fn, err)
			}
			e.Layer = s
		}
		if v, ok := pa.kw["stroke"]; ok {
			s, err := toString(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: stroke: %w", fn, err)
			}
			e.Style.Stroke = s
		}
		if err := kwFloat(pa, "stroke-width", fn, &e.Style.StrokeWidth); err != nil {
			return zygo.SexpNull, err
		}
		id, err := st.Add(e)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: %w", fn, err)
		}
		return &sexpEntityRef{id: id, kind: data.Kind()}, nil
	}

	// -----------------------------------------------------------------------
	// (pt 10 20)
	// -----------------------------------------------------------------------
	env.AddFunction("pt", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("pt requires exactly 2 arguments, got %d", len(args))
		}
		x, err := toFloat64(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("pt: x: %w", err)
		}
		y, err := toFloat64(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("pt: y: %w", err)
		}
		return &sexpPoint{p: geom.Point{X: x, Y: y}}, nil
	})

	// -----------------------------------------------------------------------
	// (line :from (pt 0 0) :to (pt 100 0) :layer "walls")
	// -----------------------------------------------------------------------
	env.AddFunction("line", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		d := entity.LineData{}
		if err := kwPoint(pa, "from", "line", &d.Start); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwPoint(pa, "to", "line", &d.End); err != nil {
			return zygo.SexpNull, err
		}
		return addEntity("line", pa, d)
	})

	// -----------------------------------------------------------------------
	// (circle :center (pt 50 50) :radius 20)
	// -----------------------------------------------------------------------
	env.AddFunction("circle", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		d := entity.CircleData{}
		if err := kwPoint(pa, "center", "circle", &d.Center); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "radius", "circle", &d.Radius); err != nil {
			return zygo.SexpNull, err
		}
		return addEntity("circle", pa, d)
	})

	// -----------------------------------------------------------------------
	// (rect :at (pt 0 0) :width 100 :height 60 :rotation 0)
	// -----------------------------------------------------------------------
	env.AddFunction("rect", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		d := entity.RectData{}
		if err := kwPoint(pa, "at", "rect", &d.Position); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "width", "rect", &d.Width); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "height", "rect", &d.Height); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "rotation", "rect", &d.Rotation); err != nil {
			return zygo.SexpNull, err
		}
		return addEntity("rect", pa, d)
	})

	// -----------------------------------------------------------------------
	// (ellipse :center (pt 0 0) :rx 40 :ry 20 :rotation 0)
	// -----------------------------------------------------------------------
	env.AddFunction("ellipse", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		d := entity.EllipseData{}
		if err := kwPoint(pa, "center", "ellipse", &d.Center); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "rx", "ellipse", &d.RadiusX); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "ry", "ellipse", &d.RadiusY); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "rotation", "ellipse", &d.Rotation); err != nil {
			return zygo.SexpNull, err
		}
		return addEntity("ellipse", pa, d)
	})

	// -----------------------------------------------------------------------
	// (arc :center (pt 0 0) :radius 10 :start 0 :end 90)
	// Angles are degrees in script source.
	// -----------------------------------------------------------------------
	env.AddFunction("arc", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		d := entity.ArcData{}
		if err := kwPoint(pa, "center", "arc", &d.Center); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "radius", "arc", &d.Radius); err != nil {
			return zygo.SexpNull, err
		}
		var startDeg, endDeg float64
		if err := kwFloat(pa, "start", "arc", &startDeg); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "end", "arc", &endDeg); err != nil {
			return zygo.SexpNull, err
		}
		d.StartAngle = geom.DegToRad(startDeg)
		d.EndAngle = geom.DegToRad(endDeg)
		if v, ok := pa.kw["clockwise"]; ok {
			b, err := toBool(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("arc: clockwise: %w", err)
			}
			d.Clockwise = b
		}
		return addEntity("arc", pa, d)
	})

	// -----------------------------------------------------------------------
	// (polygon :center (pt 0 0) :radius 30 :sides 6 :rotation 0)
	// -----------------------------------------------------------------------
	env.AddFunction("polygon", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		d := entity.PolygonData{}
		if err := kwPoint(pa, "center", "polygon", &d.Center); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "radius", "polygon", &d.Radius); err != nil {
			return zygo.SexpNull, err
		}
		if v, ok := pa.kw["sides"]; ok {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("polygon: sides: %w", err)
			}
			d.Sides = int(f)
		}
		if err := kwFloat(pa, "rotation", "polygon", &d.Rotation); err != nil {
			return zygo.SexpNull, err
		}
		return addEntity("polygon", pa, d)
	})

	// -----------------------------------------------------------------------
	// (polyline :points (list (pt 0 0) (pt 10 0) (pt 10 10)) :closed true)
	// -----------------------------------------------------------------------
	env.AddFunction("polyline", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		d := entity.PolylineData{}
		if v, ok := pa.kw["points"]; ok {
			pts, err := toPoints(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("polyline: points: %w", err)
			}
			d.Points = pts
		}
		if v, ok := pa.kw["closed"]; ok {
			b, err := toBool(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("polyline: closed: %w", err)
			}
			d.Closed = b
		}
		return addEntity("polyline", pa, d)
	})

	// -----------------------------------------------------------------------
	// (text :at (pt 10 10) :text "Hello" :rotation 0)
	// -----------------------------------------------------------------------
	env.AddFunction("text", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		d := entity.TextData{}
		if err := kwPoint(pa, "at", "text", &d.Position); err != nil {
			return zygo.SexpNull, err
		}
		if v, ok := pa.kw["text"]; ok {
			s, err := toString(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("text: text: %w", err)
			}
			d.Text = s
		}
		if err := kwFloat(pa, "rotation", "text", &d.Rotation); err != nil {
			return zygo.SexpNull, err
		}
		return addEntity("text", pa, d)
	})

	// -----------------------------------------------------------------------
	// (move ref :by (pt 10 0))
	// -----------------------------------------------------------------------
	env.AddFunction("move", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) < 1 {
			return zygo.SexpNull, fmt.Errorf("move requires an entity reference")
		}
		id, err := toEntityRef(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("move: %w", err)
		}
		var by geom.Point
		if err := kwPoint(pa, "by", "move", &by); err != nil {
			return zygo.SexpNull, err
		}
		if !st.Move(id, by) {
			return zygo.SexpNull, fmt.Errorf("move: no entity %s", id.Short())
		}
		return pa.positional[0], nil
	})

	// -----------------------------------------------------------------------
	// (rotate-entity ref :around (pt 0 0) :angle 90)
	// Registered as "rotate_entity"; the preprocessor converts the hyphen.
	// -----------------------------------------------------------------------
	env.AddFunction("rotate_entity", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) < 1 {
			return zygo.SexpNull, fmt.Errorf("rotate-entity requires an entity reference")
		}
		id, err := toEntityRef(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rotate-entity: %w", err)
		}
		var center geom.Point
		if err := kwPoint(pa, "around", "rotate-entity", &center); err != nil {
			return zygo.SexpNull, err
		}
		var angle float64
		if err := kwFloat(pa, "angle", "rotate-entity", &angle); err != nil {
			return zygo.SexpNull, err
		}
		if !st.Rotate(id, center, angle) {
			return zygo.SexpNull, fmt.Errorf("rotate-entity: no entity %s", id.Short())
		}
		return pa.positional[0], nil
	})

	// -----------------------------------------------------------------------
	// (scale-entity ref :around (pt 0 0) :x 2 :y 2)
	// -----------------------------------------------------------------------
	env.AddFunction("scale_entity", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) < 1 {
			return zygo.SexpNull, fmt.Errorf("scale-entity requires an entity reference")
		}
		id, err := toEntityRef(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("scale-entity: %w", err)
		}
		var center geom.Point
		if err := kwPoint(pa, "around", "scale-entity", &center); err != nil {
			return zygo.SexpNull, err
		}
		sx, sy := 1.0, 1.0
		if err := kwFloat(pa, "x", "scale-entity", &sx); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "y", "scale-entity", &sy); err != nil {
			return zygo.SexpNull, err
		}
		if !st.Scale(id, center, sx, sy) {
			return zygo.SexpNull, fmt.Errorf("scale-entity: no entity %s", id.Short())
		}
		return pa.positional[0], nil
	})

	// -----------------------------------------------------------------------
	// (copy-entity ref :offset (pt 20 0))
	// -----------------------------------------------------------------------
	env.AddFunction("copy_entity", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) < 1 {
			return zygo.SexpNull, fmt.Errorf("copy-entity requires an entity reference")
		}
		id, err := toEntityRef(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("copy-entity: %w", err)
		}
		var offset *geom.Point
		if v, ok := pa.kw["offset"]; ok {
			p, err := toPoint(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("copy-entity: offset: %w", err)
			}
			offset = &p
		}
		newID, ok := st.Copy(id, offset)
		if !ok {
			return zygo.SexpNull, fmt.Errorf("copy-entity: no entity %s", id.Short())
		}
		e, _ := st.Get(newID)
		return &sexpEntityRef{id: newID, kind: e.Kind()}, nil
	})

	// -----------------------------------------------------------------------
	// (delete-entity ref)
	// -----------------------------------------------------------------------
	env.AddFunction("delete_entity", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 1 {
			return zygo.SexpNull, fmt.Errorf("delete-entity requires an entity reference")
		}
		id, err := toEntityRef(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("delete-entity: %w", err)
		}
		if !st.Delete(id) {
			return zygo.SexpNull, fmt.Errorf("delete-entity: no entity %s", id.Short())
		}
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (poly-union a b) / (poly-intersect a b) / (poly-subtract a b)
	// Disjoint or unsupported operands evaluate to nil rather than erroring,
	// mirroring the soft-failure contract of the geometry layer.
	// -----------------------------------------------------------------------
	polyOp := func(fn string, op func(a, b entity.Entity, opt boolean.Options) *entity.Entity) zygo.ZlispUserFunction {
		return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			pa := parseArgs(args)
			if len(pa.positional) < 2 {
				return zygo.SexpNull, fmt.Errorf("%s requires two entity references", fn)
			}
			idA, err := toEntityRef(pa.positional[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", fn, err)
			}
			idB, err := toEntityRef(pa.positional[1])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", fn, err)
			}
			a, okA := st.Get(idA)
			b, okB := st.Get(idB)
			if !okA || !okB {
				return zygo.SexpNull, fmt.Errorf("%s: missing operand entity", fn)
			}
			opt := boolean.Options{}
			if v, ok := pa.kw["layer"]; ok {
				s, err := toString(v)
				if err != nil {
					return zygo.SexpNull, fmt.Errorf("%s: layer: %w", fn, err)
				}
				opt.Layer = s
			}
			result := op(a, b, opt)
			if result == nil {
				return zygo.SexpNull, nil
			}
			id, err := st.Add(*result)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", fn, err)
			}
			return &sexpEntityRef{id: id, kind: result.Kind()}, nil
		}
	}
	env.AddFunction("poly_union", polyOp("poly-union", boolean.Union))
	env.AddFunction("poly_intersect", polyOp("poly-intersect", boolean.Intersect))
	env.AddFunction("poly_subtract", polyOp("poly-subtract", boolean.Subtract))

	// -----------------------------------------------------------------------
	// (fillet a b :radius 5 :trim true)
	// (chamfer a b :dist1 5 :dist2 5 :trim true)
	// Parallel lines evaluate to nil.
	// -----------------------------------------------------------------------
	env.AddFunction("fillet", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) < 2 {
			return zygo.SexpNull, fmt.Errorf("fillet requires two line references")
		}
		idA, err := toEntityRef(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("fillet: %w", err)
		}
		idB, err := toEntityRef(pa.positional[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("fillet: %w", err)
		}
		var radius float64
		if err := kwFloat(pa, "radius", "fillet", &radius); err != nil {
			return zygo.SexpNull, err
		}
		trim := true
		if v, ok := pa.kw["trim"]; ok {
			b, err := toBool(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("fillet: trim: %w", err)
			}
			trim = b
		}
		arcID, ok := modify.Fillet(st, idA, idB, radius, trim)
		if !ok {
			return zygo.SexpNull, nil
		}
		return &sexpEntityRef{id: arcID, kind: entity.KindArc}, nil
	})

	env.AddFunction("chamfer", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) < 2 {
			return zygo.SexpNull, fmt.Errorf("chamfer requires two line references")
		}
		idA, err := toEntityRef(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("chamfer: %w", err)
		}
		idB, err := toEntityRef(pa.positional[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("chamfer: %w", err)
		}
		var d1, d2 float64
		if err := kwFloat(pa, "dist1", "chamfer", &d1); err != nil {
			return zygo.SexpNull, err
		}
		if err := kwFloat(pa, "dist2", "chamfer", &d2); err != nil {
			return zygo.SexpNull, err
		}
		trim := true
		if v, ok := pa.kw["trim"]; ok {
			b, err := toBool(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("chamfer: trim: %w", err)
			}
			trim = b
		}
		chID, ok := modify.Chamfer(st, idA, idB, d1, d2, trim)
		if !ok {
			return zygo.SexpNull, nil
		}
		return &sexpEntityRef{id: chID, kind: entity.KindLine}, nil
	})

	// -----------------------------------------------------------------------
	// (trim-line ref :boundary (list b1 b2) :at (pt 2 0))
	// (extend-line ref :boundary (list b1) :at (pt 5 0))
	// No intersection evaluates to nil.
	// -----------------------------------------------------------------------
	lineOp := func(fn string, op func(st *store.Store, id entity.ID, boundary []entity.ID, click geom.Point) bool) zygo.ZlispUserFunction {
		return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			pa := parseArgs(args)
			if len(pa.positional) < 1 {
				return zygo.SexpNull, fmt.Errorf("%s requires an entity reference", fn)
			}
			id, err := toEntityRef(pa.positional[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", fn, err)
			}
			var boundary []entity.ID
			if v, ok := pa.kw["boundary"]; ok {
				items, err := sexpListToSlice(v)
				if err != nil {
					return zygo.SexpNull, fmt.Errorf("%s: boundary: %w", fn, err)
				}
				for _, item := range items {
					bid, err := toEntityRef(item)
					if err != nil {
						return zygo.SexpNull, fmt.Errorf("%s: boundary entry: %w", fn, err)
					}
					boundary = append(boundary, bid)
				}
			}
			var click geom.Point
			if err := kwPoint(pa, "at", fn, &click); err != nil {
				return zygo.SexpNull, err
			}
			if !op(st, id, boundary, click) {
				return zygo.SexpNull, nil
			}
			return pa.positional[0], nil
		}
	}
	env.AddFunction("trim_line", lineOp("trim-line", modify.Trim))
	env.AddFunction("extend_line", lineOp("extend-line", modify.Extend))
}
