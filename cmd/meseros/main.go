// Terminal client for waitstaff: table grid, order entry and bill view.
// Display filtering only; every rule lives behind the API.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/EdM0807/sistema-meseros/internal/domain"
	"github.com/EdM0807/sistema-meseros/pkg/client"
)

func main() {
	baseURL := os.Getenv("API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}

	api := client.New(baseURL, nil)
	app := &app{api: api, in: bufio.NewScanner(os.Stdin)}
	app.run()
}

type app struct {
	api *client.Client
	in  *bufio.Scanner
}

func (a *app) run() {
	for {
		fmt.Println()
		fmt.Println("=== Sistema de Meseros ===")
		fmt.Println("1) Ver mesas")
		fmt.Println("2) Ver mesas libres")
		fmt.Println("3) Ocupar mesa (nuevo pedido)")
		fmt.Println("4) Ver cuenta de una mesa")
		fmt.Println("5) Ver pedidos activos")
		fmt.Println("0) Salir")

		switch a.prompt("Opción") {
		case "1":
			a.verMesas()
		case "2":
			a.verMesasLibres()
		case "3":
			a.ocuparMesa()
		case "4":
			a.verCuenta()
		case "5":
			a.verPedidosActivos()
		case "0":
			return
		}
	}
}

func (a *app) prompt(label string) string {
	fmt.Printf("%s: ", label)
	if !a.in.Scan() {
		os.Exit(0)
	}
	return strings.TrimSpace(a.in.Text())
}

func (a *app) promptInt(label string) int {
	n, _ := strconv.Atoi(a.prompt(label))
	return n
}

func (a *app) verMesas() {
	mesas, err := a.api.GetMesas()
	if err != nil {
		fmt.Println("Error cargando mesas:", err)
		return
	}

	ubicacion := a.prompt("Filtrar por ubicación (vacío = todas)")
	fmt.Printf("%-4s %-12s %-10s %-4s %s\n", "ID", "Mesa", "Estado", "Cap", "Ubicación")
	for _, m := range mesas {
		if ubicacion != "" && !strings.Contains(m.Ubicacion, ubicacion) {
			continue
		}
		fmt.Printf("%-4d %-12s %-10s %-4d %s\n", m.ID, m.Nombre, m.Estado, m.Capacidad, m.Ubicacion)
	}
}

func (a *app) verMesasLibres() {
	mesas, err := a.api.GetMesasLibres()
	if err != nil {
		fmt.Println("Error cargando mesas libres:", err)
		return
	}
	if len(mesas) == 0 {
		fmt.Println("No hay mesas libres")
		return
	}
	for _, m := range mesas {
		fmt.Printf("%-4d %-12s %d personas (%s)\n", m.ID, m.Nombre, m.Capacidad, m.Ubicacion)
	}
}

func (a *app) ocuparMesa() {
	mesaID := a.promptInt("ID de mesa")
	if mesaID <= 0 {
		fmt.Println("Mesa inválida")
		return
	}

	productos, err := a.api.GetProductos()
	if err != nil {
		fmt.Println("Error cargando productos:", err)
		return
	}
	porID := make(map[int]domain.Producto, len(productos))
	for _, p := range productos {
		porID[p.ID] = p
		fmt.Printf("%-4d %-24s $%.2f\n", p.ID, p.Nombre, p.Precio)
	}

	var items []domain.CrearPedidoItem
	for {
		productoID := a.promptInt("ID de producto (0 = terminar)")
		if productoID == 0 {
			break
		}
		producto, ok := porID[productoID]
		if !ok {
			fmt.Println("Producto desconocido")
			continue
		}
		cantidad := a.promptInt("Cantidad")
		if cantidad < 1 {
			fmt.Println("La cantidad debe ser positiva")
			continue
		}

		var complementos []string
		if len(producto.Complementos) > 0 {
			fmt.Println("Complementos disponibles:", strings.Join(producto.Complementos, ", "))
			if elegidos := a.prompt("Complementos (separados por coma, vacío = ninguno)"); elegidos != "" {
				for _, c := range strings.Split(elegidos, ",") {
					complementos = append(complementos, strings.TrimSpace(c))
				}
			}
		}

		items = append(items, domain.CrearPedidoItem{
			ProductoID:   productoID,
			Cantidad:     cantidad,
			Precio:       producto.Precio,
			Complementos: complementos,
		})
	}

	if len(items) == 0 {
		fmt.Println("Pedido vacío, nada que enviar")
		return
	}

	observaciones := a.prompt("Observaciones")
	resp, err := a.api.CrearPedido(&domain.CrearPedidoRequest{
		MesaID:        mesaID,
		Items:         items,
		Observaciones: observaciones,
	})
	if err != nil {
		fmt.Println("Error creando pedido:", err)
		return
	}
	fmt.Printf("Pedido %d creado, total $%.2f\n", resp.PedidoID, resp.Total)
}

func (a *app) verCuenta() {
	mesaID := a.promptInt("ID de mesa")
	pedidos, err := a.api.GetPedidosPorMesa(mesaID)
	if err != nil {
		fmt.Println("Error cargando pedidos:", err)
		return
	}
	if len(pedidos) == 0 {
		fmt.Println("La mesa no tiene pedidos activos")
		return
	}

	var total float64
	for _, p := range pedidos {
		detalle, err := a.api.GetPedido(p.ID)
		if err != nil {
			fmt.Printf("Pedido %d: error: %v\n", p.ID, err)
			continue
		}
		fmt.Printf("Pedido %d (%s)\n", detalle.ID, detalle.Estado)
		for _, item := range detalle.Items {
			fmt.Printf("  %dx %-24s $%.2f\n", item.Cantidad, item.ProductoNombre,
				float64(item.Cantidad)*item.PrecioUnitario)
			if len(item.Complementos) > 0 {
				fmt.Printf("     + %s\n", strings.Join(item.Complementos, ", "))
			}
		}
		if detalle.Observaciones != "" {
			fmt.Printf("  Obs: %s\n", detalle.Observaciones)
		}
		total += detalle.Total
	}
	fmt.Printf("Total de la mesa: $%.2f\n", total)
}

func (a *app) verPedidosActivos() {
	pedidos, err := a.api.GetPedidosActivos()
	if err != nil {
		fmt.Println("Error cargando pedidos activos:", err)
		return
	}
	if len(pedidos) == 0 {
		fmt.Println("No hay pedidos activos")
		return
	}
	for _, p := range pedidos {
		fmt.Printf("Pedido %-4d mesa %-3d %-12s $%.2f\n", p.ID, p.MesaID, p.Estado, p.Total)
	}
}
