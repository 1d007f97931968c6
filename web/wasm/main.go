//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cwbudde/algo-epicycle/dsp/curve"
	"github.com/cwbudde/algo-epicycle/internal/webdemo"
)

var (
	engine *webdemo.Engine
	funcs  []js.Func
)

func main() {
	api := js.Global().Get("Object").New()
	api.Set("init", export(func(args []js.Value) any {
		width, height := 400.0, 400.0
		if len(args) > 1 {
			width, height = args[0].Float(), args[1].Float()
		}
		e, err := webdemo.NewEngine(width, height)
		if err != nil {
			return err.Error()
		}
		engine = e
		return js.Null()
	}))

	api.Set("pointerDown", export(func(args []js.Value) any {
		if engine != nil {
			engine.PointerDown()
		}
		return js.Null()
	}))

	api.Set("pointerUp", export(func(args []js.Value) any {
		if engine != nil {
			engine.PointerUp()
		}
		return js.Null()
	}))

	api.Set("pointerMove", export(func(args []js.Value) any {
		if engine == nil || len(args) < 3 {
			return false
		}
		return engine.PointerMove(args[0].Float(), args[1].Float(), args[2].Float())
	}))

	api.Set("startTrace", export(func(args []js.Value) any {
		if engine == nil {
			return js.Null()
		}
		return errorValue(engine.StartTrace())
	}))

	api.Set("setCurve", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		return errorValue(engine.SetCurve(readCurve(args[0])))
	}))

	api.Set("setHarmonics", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		return errorValue(engine.SetHarmonics(args[0].Int()))
	}))

	api.Set("setSignal", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		return errorValue(engine.SetSignal(args[0].String()))
	}))

	api.Set("setWidgetTerms", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		return errorValue(engine.SetWidgetTerms(args[0].Int()))
	}))

	api.Set("frame", export(func(args []js.Value) any {
		if engine == nil {
			return js.Null()
		}
		f, err := engine.Frame()
		if err != nil {
			return js.Null()
		}
		obj := js.Global().Get("Object").New()
		obj.Set("t", f.T)
		obj.Set("wrapped", f.Wrapped)
		obj.Set("tip", flatten(curve.Curve{f.Tip}))
		obj.Set("joints", flatten(f.Joints))
		obj.Set("yJoints", flatten(f.YJoints))
		obj.Set("trace", flatten(engine.Traced()))
		return obj
	}))

	api.Set("overlay", export(func(args []js.Value) any {
		if engine == nil {
			return flatten(nil)
		}
		c, err := engine.Overlay()
		if err != nil {
			return flatten(nil)
		}
		return flatten(c)
	}))

	api.Set("widget", export(func(args []js.Value) any {
		out := js.Global().Get("Array").New()
		if engine == nil {
			return out
		}
		series, err := engine.Widget()
		if err != nil {
			return out
		}
		for i, s := range series {
			obj := js.Global().Get("Object").New()
			obj.Set("color", s.Color)
			obj.Set("points", flatten(s.Points))
			out.SetIndex(i, obj)
		}
		return out
	}))

	js.Global().Set("AlgoEpicycle", api)
	select {}
}

// readCurve accepts a flat [x0, y0, x1, y1, ...] array.
func readCurve(v js.Value) curve.Curve {
	n := v.Length() / 2
	c := make(curve.Curve, n)
	for i := range c {
		c[i] = curve.Point{X: v.Index(2 * i).Float(), Y: v.Index(2*i + 1).Float()}
	}
	return c
}

// flatten packs points into a Float64Array of x, y pairs.
func flatten(c curve.Curve) js.Value {
	arr := js.Global().Get("Float64Array").New(2 * len(c))
	for i, p := range c {
		arr.SetIndex(2*i, p.X)
		arr.SetIndex(2*i+1, p.Y)
	}
	return arr
}

func errorValue(err error) any {
	if err != nil {
		return err.Error()
	}
	return js.Null()
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
