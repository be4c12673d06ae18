package ingest

import "github.com/kailas-cloud/intentd/internal/domain"

// SeedExample pairs a training text with its label.
type SeedExample struct {
	Text  string
	Label domain.Label
}

// SeedExamples is the built-in labeled training set for the logistics
// platform. The texts are Spanish because that is what the end users type.
var SeedExamples = []SeedExample{
	// sql: usuarios
	{"¿Cuántos usuarios hay registrados?", domain.LabelSQL},
	{"Lista de usuarios con sus correos", domain.LabelSQL},
	{"Mostrar la fecha de creación de los últimos usuarios", domain.LabelSQL},
	{"Quiero ver los nombres de todos los usuarios", domain.LabelSQL},
	{"¿Cuál es el correo del usuario con id 5?", domain.LabelSQL},

	// sql: camiones
	{"¿Qué camiones están registrados en el sistema?", domain.LabelSQL},
	{"Dame la capacidad del camión con placa ABC123", domain.LabelSQL},
	{"Mostrar todos los modelos de camiones", domain.LabelSQL},
	{"¿Cuántos camiones hay disponibles?", domain.LabelSQL},
	{"Ver la fecha de registro del último camión agregado", domain.LabelSQL},

	// sql: paquetes
	{"Listar todos los paquetes pendientes", domain.LabelSQL},
	{"¿Qué paquetes tiene asignados el camión 2?", domain.LabelSQL},
	{"Ver el estado del paquete con número de seguimiento 123456", domain.LabelSQL},
	{"Mostrar los destinos de los últimos 10 paquetes", domain.LabelSQL},
	{"¿Qué usuario creó el paquete con id 15?", domain.LabelSQL},

	// sql: historial de seguimiento
	{"Historial de estados del paquete 98765", domain.LabelSQL},
	{"¿En qué ubicación estuvo el paquete con seguimiento 111222?", domain.LabelSQL},
	{"Mostrar todas las actualizaciones recientes de seguimiento", domain.LabelSQL},
	{"Lista de paquetes que cambiaron de estado hoy", domain.LabelSQL},
	{"Última actualización del paquete 2024", domain.LabelSQL},

	// docs: instalación y configuración
	{"¿Cómo configuro la aplicación por primera vez?", domain.LabelDocs},
	{"¿Cuál es la configuración recomendada para que la app funcione mejor?", domain.LabelDocs},
	{"¿Cómo desactivo la optimización de batería para Wis Tracking?", domain.LabelDocs},
	{"¿Qué permisos debo otorgar en la configuración inicial?", domain.LabelDocs},
	{"¿Cuáles son los pasos para asociar un dispositivo móvil?", domain.LabelDocs},
	{"¿Cómo inicio sesión en la aplicación?", domain.LabelDocs},

	// docs: trabajar viajes
	{"¿Cómo acceder a los viajes disponibles en la app?", domain.LabelDocs},
	{"¿Qué información aparece en la pantalla de un viaje?", domain.LabelDocs},
	{"¿Qué modos de trabajo ofrece la app durante un viaje?", domain.LabelDocs},
	{"¿Cómo cambiar el orden de visitas en un viaje?", domain.LabelDocs},
	{"¿Qué pasa si quiero cancelar una visita?", domain.LabelDocs},
	{"¿Cuál es la diferencia entre confirmación automática y manual de llegada?", domain.LabelDocs},
	{"¿Qué ocurre si confirmo la llegada fuera del radio permitido?", domain.LabelDocs},
	{"¿Qué restricciones existen para cancelar visitas?", domain.LabelDocs},
	{"¿Cómo volver a una visita ya realizada o cancelada?", domain.LabelDocs},

	// docs: visitas, entregas y recepciones
	{"¿Cómo registrar la entrega de objetos en la app?", domain.LabelDocs},
	{"¿Cómo usar el escáner para registrar entregas?", domain.LabelDocs},
	{"¿Qué hacer si recibo un objeto no esperado?", domain.LabelDocs},
	{"¿Cómo puedo agregar comentarios a una visita?", domain.LabelDocs},
	{"¿Cómo restaurar objetos procesados en una visita?", domain.LabelDocs},
	{"¿Cómo sacar una fotografía en una visita?", domain.LabelDocs},
	{"¿Cómo firmar digitalmente al entregar o recibir un objeto?", domain.LabelDocs},

	// docs: finalizar viaje
	{"¿Qué condición debo cumplir para finalizar un viaje?", domain.LabelDocs},
	{"¿Qué ocurre con las visitas pendientes al cerrar un viaje?", domain.LabelDocs},
	{"¿Cómo es el comportamiento posterior a la finalización del viaje?", domain.LabelDocs},

	// docs: sincronización y registro
	{"¿Cómo se sincronizan los datos de los dispositivos móviles?", domain.LabelDocs},
	{"¿Qué notificaciones envía el sistema al registrar visitas?", domain.LabelDocs},
	{"¿Cómo se registra la ubicación del dispositivo?", domain.LabelDocs},

	// docs: panel web, autenticación y contraseñas
	{"¿Cómo registrar un nuevo usuario desde el panel web?", domain.LabelDocs},
	{"¿Qué políticas de seguridad existen para las contraseñas?", domain.LabelDocs},
	{"¿Cómo recuperar o cambiar mi contraseña?", domain.LabelDocs},
	{"¿Qué hacer si mi cuenta fue bloqueada por intentos fallidos?", domain.LabelDocs},

	// docs: panel web, indicadores
	{"¿Qué información muestran los indicadores de acciones realizadas?", domain.LabelDocs},
	{"¿Dónde veo los objetos entregados o recepcionados por día?", domain.LabelDocs},
	{"¿Qué son los accesos rápidos en la pantalla principal?", domain.LabelDocs},
	{"¿Cómo revisar los indicadores del día?", domain.LabelDocs},
	{"¿Qué representa el indicador de geolocalización de puntos de entrega?", domain.LabelDocs},

	// docs: panel web, mantenimiento
	{"¿Cómo gestionar los motivos desde el panel web?", domain.LabelDocs},
	{"¿Cómo crear un nuevo motivo en Wis Tracking?", domain.LabelDocs},
	{"¿Cómo editar un motivo existente?", domain.LabelDocs},
	{"¿Cómo vincular un dispositivo móvil al sistema desde el panel?", domain.LabelDocs},
	{"¿Dónde consulto y edito los puntos de entrega?", domain.LabelDocs},
	{"¿Cómo funciona la geolocalización manual y automática de un punto?", domain.LabelDocs},
	{"¿Qué significa el estado de geolocalización de un punto de entrega?", domain.LabelDocs},
	{"¿Cómo consultar los clientes asociados a un punto de entrega?", domain.LabelDocs},
	{"¿Cómo crear o editar un objeto en el sistema?", domain.LabelDocs},
	{"¿Cómo anular un objeto pendiente?", domain.LabelDocs},
	{"¿Cómo generar una etiqueta de recepción desde el panel?", domain.LabelDocs},
	{"¿Qué significa la trazabilidad de un objeto?", domain.LabelDocs},
	{"¿Cómo consultar los vehículos registrados?", domain.LabelDocs},
	{"¿Cómo crear o editar un vehículo?", domain.LabelDocs},
	{"¿Cómo crear o editar tipos de vehículo?", domain.LabelDocs},
	{"¿Cómo administrar zonas en Wis Tracking?", domain.LabelDocs},

	// docs: panel web, reportes y viajes
	{"¿Dónde consultar las tareas activas?", domain.LabelDocs},
	{"¿Cómo cancelar una tarea activa?", domain.LabelDocs},
	{"¿Cómo ver el detalle de un viaje?", domain.LabelDocs},
	{"¿Dónde encuentro las fotos y firmas registradas?", domain.LabelDocs},
	{"¿Cómo exportar un reporte de viajes?", domain.LabelDocs},
	{"¿Cómo revisar el resumen de viajes realizados?", domain.LabelDocs},

	// docs: panel web, mapas y seguimiento
	{"¿Qué muestra el panel de viajes activos?", domain.LabelDocs},
	{"¿Cómo funciona el panel de visualización de viajes?", domain.LabelDocs},
	{"¿Cómo hacer el seguimiento de viajes en tiempo real?", domain.LabelDocs},

	// docs: panel web, configuración y usuarios
	{"¿Cómo administrar perfiles en el sistema?", domain.LabelDocs},
	{"¿Cómo gestionar usuarios desde el panel web?", domain.LabelDocs},
	{"¿Cómo configurar las grillas de datos?", domain.LabelDocs},
	{"¿Cómo reorganizar o filtrar columnas en una grilla?", domain.LabelDocs},
	{"¿Cómo guardar y aplicar filtros?", domain.LabelDocs},
	{"¿Cómo exportar datos desde las grillas?", domain.LabelDocs},
}
