package dev

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/PancyStudios/PancyModGo/pkg/config"
	"github.com/PancyStudios/PancyModGo/pkg/database"
	"github.com/PancyStudios/PancyModGo/pkg/discord"
	"github.com/PancyStudios/PancyModGo/pkg/logger"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// createEvalCommand crea el comando !eval (solo owner, nunca aparece en la ayuda)
func createEvalCommand() *discord.Command {
	return discord.NewCommand(
		"eval",
		"Evalúa código Go y muestra estructuras internas (Peligroso)",
		"dev",
		evalHandler,
	).WithUsage("!eval <código>").AsOwnerOnly()
}

func evalHandler(ctx *discord.CommandContext) error {
	start := time.Now()

	if len(ctx.Args) == 0 {
		return ctx.Reply("❌ Proporciona código a evaluar.")
	}

	// Limpieza del código de entrada: quitar bloques de markdown si existen
	code := strings.Join(ctx.Args, " ")
	code = strings.TrimPrefix(code, "```go")
	code = strings.TrimPrefix(code, "```")
	code = strings.TrimSuffix(code, "```")
	code = strings.TrimSpace(code)

	// Inicializar el intérprete Yaegi con la stdlib de Go
	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return ctx.Reply(fmt.Sprintf("❌ Error cargando stdlib: %v", err))
	}

	// Inyección de variables del bot: 'Ctx', 'Bot', 'Session', 'DB', 'Config'
	// quedan disponibles directamente en el código evaluado
	botExports := map[string]reflect.Value{
		"Ctx":     reflect.ValueOf(ctx),
		"Bot":     reflect.ValueOf(ctx.Client),
		"Session": reflect.ValueOf(ctx.Session),
		"DB":      reflect.ValueOf(database.Get()),
		"Config":  reflect.ValueOf(config.Get()),
		"Warns":   reflect.ValueOf(ctx.Warns),
	}

	if err := i.Use(interp.Exports{
		"github.com/PancyStudios/PancyModGo/internal/commands/dev/dev": botExports,
	}); err != nil {
		return ctx.Reply(fmt.Sprintf("❌ Error registrando variables: %v", err))
	}

	if _, err := i.Eval(`import . "github.com/PancyStudios/PancyModGo/internal/commands/dev"`); err != nil {
		return ctx.Reply(fmt.Sprintf("❌ Error importando variables: %v", err))
	}

	res, err := i.Eval(code)

	var output string
	if err != nil {
		output = fmt.Sprintf("❌ **Error de Ejecución:**\n```go\n%v\n```", err)
	} else {
		var resStr string
		if res.IsValid() {
			// %#v para ver la estructura interna completa
			resStr = fmt.Sprintf("%#v", res.Interface())
		} else {
			resStr = "nil"
		}
		if len(resStr) > 1900 {
			resStr = resStr[:1900] + "... (truncado)"
		}
		output = fmt.Sprintf("✅ **Resultado:**\n```go\n%s\n```", resStr)
	}

	logger.Debug(fmt.Sprintf("Eval completado en %s", time.Since(start)), "DevEval")
	return ctx.Reply(output)
}
