//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cwbudde/algo-noise/internal/webdemo"
)

var (
	engine *webdemo.Engine
	funcs  []js.Func
)

func main() {
	api := js.Global().Get("Object").New()
	api.Set("init", export(func(args []js.Value) any {
		sr := 44100.0
		if len(args) > 0 {
			sr = args[0].Float()
		}
		e, err := webdemo.NewEngine(sr)
		if err != nil {
			return err.Error()
		}
		engine = e
		return js.Null()
	}))

	api.Set("setRGB", export(func(args []js.Value) any {
		if engine == nil || len(args) < 3 {
			return js.Null()
		}
		engine.SetRGB(args[0].Int(), args[1].Int(), args[2].Int())
		return js.Null()
	}))

	api.Set("setOrganicMode", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		engine.SetOrganicMode(args[0].Bool())
		return js.Null()
	}))

	api.Set("setOrganic", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		p := args[0]
		err := engine.SetOrganic(webdemo.OrganicParams{
			RateHz:     p.Get("lfoRate").Float(),
			Depth:      p.Get("lfoDepth").Float(),
			Shape:      p.Get("lfoShape").String(),
			Randomness: p.Get("randomness").Float(),
		})
		if err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("setPhaseOffset", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		engine.SetPhaseOffset(args[0].Float())
		return js.Null()
	}))

	api.Set("setRunning", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		if err := engine.SetRunning(args[0].Bool()); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("render", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Global().Get("Float32Array").New(0)
		}
		n := 2 * args[0].Int()
		buf := make([]float32, n)
		if err := engine.Render(buf); err != nil {
			return js.Global().Get("Float32Array").New(0)
		}
		arr := js.Global().Get("Float32Array").New(n)
		for i := 0; i < n; i++ {
			arr.SetIndex(i, buf[i])
		}
		return arr
	}))

	api.Set("exportWAV", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		data, err := engine.ExportWAV(args[0].Float())
		if err != nil {
			return err.Error()
		}
		arr := js.Global().Get("Uint8Array").New(len(data))
		js.CopyBytesToJS(arr, data)
		return arr
	}))

	api.Set("info", export(func(args []js.Value) any {
		if engine == nil {
			return js.Null()
		}
		info := engine.Info()
		obj := js.Global().Get("Object").New()
		obj.Set("category", info.Category)
		obj.Set("hex", info.Hex)
		obj.Set("name", info.Name)
		obj.Set("fileName", info.FileName)
		return obj
	}))

	api.Set("presetJSON", export(func(args []js.Value) any {
		if engine == nil {
			return js.Null()
		}
		name := ""
		if len(args) > 0 {
			name = args[0].String()
		}
		data, err := engine.PresetJSON(name)
		if err != nil {
			return js.Null()
		}
		return data
	}))

	api.Set("loadPresetJSON", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		if err := engine.LoadPresetJSON(args[0].String()); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("spectrumCurve", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Global().Get("Float32Array").New(0)
		}
		input := args[0]
		freqs := make([]float64, input.Length())
		for i := 0; i < input.Length(); i++ {
			freqs[i] = input.Index(i).Float()
		}
		resp := engine.SpectrumCurveDB(freqs)
		arr := js.Global().Get("Float32Array").New(len(resp))
		for i := range resp {
			arr.SetIndex(i, resp[i])
		}
		return arr
	}))

	api.Set("spectralSlope", export(func(args []js.Value) any {
		if engine == nil {
			return js.Null()
		}
		v, ok := engine.SpectralSlope()
		if !ok {
			return js.Null()
		}
		return v
	}))

	js.Global().Set("AlgoNoise", api)
	select {}
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
